package logger

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

// 慢命令判定阈值
const slowMongoThreshold = 250 * time.Millisecond

// NewMongoMonitor 构造驱动的命令监视器
// 命令明细超长时截断后入日志
func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			log.InfoContext(ctx, "mongo "+evt.CommandName+" started",
				log.String("database", evt.DatabaseName),
				log.Int64("request_id", evt.RequestID),
				log.String("detail", clip(evt.Command.String(), logBodyLimit)),
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			attrs := []any{
				log.Int64("request_id", evt.RequestID),
				log.Duration("cost", evt.Duration),
			}
			if evt.Duration >= slowMongoThreshold {
				log.WarnContext(ctx, "mongo "+evt.CommandName+" slow", attrs...)
				return
			}
			log.InfoContext(ctx, "mongo "+evt.CommandName+" ok", attrs...)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "mongo "+evt.CommandName+" failed",
				log.Int64("request_id", evt.RequestID),
				log.Duration("cost", evt.Duration),
				log.Any("err", evt.Failure),
			)
		},
	}
}
