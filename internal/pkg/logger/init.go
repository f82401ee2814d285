package logger

import (
	"Inkwell/internal/api/config"
	log "log/slog"
	"net"
	"os"
)

// InitLogger 装配全局 slog
// 本地 stdout 常开，配置了 Logstash 地址时带链路 ID 的记录同步上报
func InitLogger() {
	cfg := config.Cfg.Logstash

	local := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})
	root := log.Handler(local)

	if cfg.Address != "" {
		conn, err := net.Dial("tcp", cfg.Address)
		if err != nil {
			log.Warn("logstash unreachable, logging to stdout only", "addr", cfg.Address, "err", err)
		} else {
			remote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
					log.String("log_token", cfg.Token),
				})
			root = &fanoutHandler{targets: []log.Handler{
				local,
				&tracedOnlyHandler{next: remote},
			}}
		}
	}

	log.SetDefault(log.New(&traceHandler{Handler: root}))
}
