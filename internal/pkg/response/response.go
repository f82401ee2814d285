package response

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/service"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 统一成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Error 统一错误响应，按 service.ErrorMap 映射状态码
func Error(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	msg := "服务器内部错误"

	var vErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &vErrs):
		code = http.StatusBadRequest
		first := vErrs[0]
		msg = fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", first.Field(), first.Tag())
	case errors.As(err, &typeErr):
		code = http.StatusBadRequest
		msg = fmt.Sprintf("字段 [%s] 类型错误", typeErr.Field)
	default:
		for target, status := range service.ErrorMap {
			if errors.Is(err, target) {
				code = status
				msg = target.Error()
				break
			}
		}
	}

	if code == http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "internal error", "err", err)
	}

	c.JSON(code, dto.Response{
		Code:    code,
		Message: msg,
		Data:    nil,
	})
}

// Fail 自定义状态码错误响应
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: msg,
		Data:    nil,
	})
}
