package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"
)

const (
	// 请求体与响应体入日志的长度上限
	logBodyLimit = 1024
	// 慢查询判定阈值
	slowSearchThreshold = 500 * time.Millisecond
)

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...(clipped)"
}

// SearchTransport 包装 http.RoundTripper，记录每次 Elasticsearch 往返
type SearchTransport struct {
	Next http.RoundTripper
}

func (t *SearchTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	var payload string
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(raw))
		payload = clip(string(raw), logBodyLimit)
	}

	resp, err := t.Next.RoundTrip(req)
	cost := time.Since(start)

	attrs := []any{
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Duration("cost", cost),
		log.String("payload", payload),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "es request failed", append(attrs, log.Any("err", err))...)
		return nil, err
	}

	attrs = append(attrs, log.Int("status", resp.StatusCode))
	if resp.Body != nil {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewReader(raw))
		attrs = append(attrs, log.String("result", clip(string(raw), logBodyLimit)))
	}

	if cost >= slowSearchThreshold {
		log.WarnContext(req.Context(), "es request slow", attrs...)
	} else {
		log.InfoContext(req.Context(), "es request", attrs...)
	}

	return resp, nil
}
