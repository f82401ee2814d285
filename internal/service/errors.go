package service

import (
	"errors"
	"net/http"
)

// 业务错误，response 层按 ErrorMap 映射状态码
var (
	ErrInvalidInput = errors.New("请求参数不合法")
	ErrNotFound     = errors.New("资源不存在")
	ErrForbidden    = errors.New("无权操作该资源")

	ErrUsernameFormat   = errors.New("用户名只能包含字母、数字、下划线和连字符，长度 3 到 20")
	ErrUsernameTaken    = errors.New("用户名已被占用")
	ErrUsernameRequired = errors.New("请先设置用户名")
	ErrFollowSelf       = errors.New("不能关注自己")

	ErrLLMNotConfigured = errors.New("内容服务未配置模型凭证")
	ErrLLMAuth          = errors.New("模型凭证无效")
	ErrLLMUnavailable   = errors.New("模型服务不可用")
	ErrLLMRateLimited   = errors.New("模型调用超出配额，请稍后重试")
	ErrLLMRemote        = errors.New("模型调用失败")
)

var ErrorMap = map[error]int{
	ErrInvalidInput:     http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
	ErrForbidden:        http.StatusForbidden,
	ErrUsernameFormat:   http.StatusBadRequest,
	ErrUsernameTaken:    http.StatusConflict,
	ErrUsernameRequired: http.StatusForbidden,
	ErrFollowSelf:       http.StatusBadRequest,

	ErrLLMNotConfigured: http.StatusInternalServerError,
	ErrLLMAuth:          http.StatusBadGateway,
	ErrLLMUnavailable:   http.StatusServiceUnavailable,
	ErrLLMRateLimited:   http.StatusTooManyRequests,
	ErrLLMRemote:        http.StatusBadGateway,
}
