package logger

import (
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin 挂载访问日志与 panic 恢复
// 访问日志走全局 slog，链路中间件写入的 trace_id 随记录一并上报
func SetupGin(r *gin.Engine) {
	r.Use(accessLog(), gin.Recovery())
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.InfoContext(c.Request.Context(), "HTTP "+c.Request.Method,
			log.String("path", path),
			log.Int("status", c.Writer.Status()),
			log.Duration("cost", time.Since(start)),
			log.String("client_ip", c.ClientIP()),
		)
	}
}
