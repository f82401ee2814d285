package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 链路 ID 在 ctx 与日志属性中共用的键名
const TraceIDKey = "trace_id"

// TraceID 从 ctx 中取出链路 ID，没有时返回空串
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}

// traceHandler 写日志前把 ctx 里的链路 ID 追加为属性
type traceHandler struct {
	log.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r log.Record) error {
	if id := TraceID(ctx); id != "" {
		r.AddAttrs(log.String(TraceIDKey, id))
	}
	return h.Handler.Handle(ctx, r)
}
