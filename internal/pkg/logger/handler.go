package logger

import (
	"context"
	log "log/slog"
)

// fanoutHandler 把同一条记录依次交给每个下游
// 单个下游写失败不中断其余下游，返回遇到的第一个错误
type fanoutHandler struct {
	targets []log.Handler
}

func (f *fanoutHandler) Enabled(ctx context.Context, level log.Level) bool {
	for _, t := range f.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, r log.Record) error {
	var firstErr error
	for _, t := range f.targets {
		if !t.Enabled(ctx, r.Level) {
			continue
		}
		if err := t.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanoutHandler) WithAttrs(attrs []log.Attr) log.Handler {
	next := make([]log.Handler, len(f.targets))
	for i, t := range f.targets {
		next[i] = t.WithAttrs(attrs)
	}
	return &fanoutHandler{targets: next}
}

func (f *fanoutHandler) WithGroup(name string) log.Handler {
	next := make([]log.Handler, len(f.targets))
	for i, t := range f.targets {
		next[i] = t.WithGroup(name)
	}
	return &fanoutHandler{targets: next}
}

// tracedOnlyHandler 只放行带链路 ID 的记录
// 后台任务等没有 trace_id 的日志留在本地，不发往 Logstash
type tracedOnlyHandler struct {
	next log.Handler
}

func (h *tracedOnlyHandler) Enabled(ctx context.Context, level log.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *tracedOnlyHandler) Handle(ctx context.Context, r log.Record) error {
	traced := false
	r.Attrs(func(a log.Attr) bool {
		if a.Key == TraceIDKey && a.Value.String() != "" {
			traced = true
			return false
		}
		return true
	})
	if !traced {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *tracedOnlyHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &tracedOnlyHandler{next: h.next.WithAttrs(attrs)}
}

func (h *tracedOnlyHandler) WithGroup(name string) log.Handler {
	return &tracedOnlyHandler{next: h.next.WithGroup(name)}
}
