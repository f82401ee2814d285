package logger

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

// 慢 SQL 判定阈值
const slowSQLThreshold = 250 * time.Millisecond

// GormSlogLogger 把 gorm 内部日志接到全局 slog 上
type GormSlogLogger struct {
	level logger.LogLevel
}

func NewGormLogger() logger.Interface {
	return &GormSlogLogger{level: logger.Info}
}

func (l *GormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormSlogLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		log.InfoContext(ctx, msg, "detail", args)
	}
}

func (l *GormSlogLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		log.WarnContext(ctx, msg, "detail", args)
	}
}

func (l *GormSlogLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		log.ErrorContext(ctx, msg, "detail", args)
	}
}

// Trace 记录每条 SQL，按错误、慢查询、正常三档分级
func (l *GormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	cost := time.Since(begin)
	sql, rows := fc()

	verb := "QUERY"
	if parts := strings.Fields(sql); len(parts) > 0 {
		verb = strings.ToUpper(parts[0])
	}

	attrs := []any{
		log.String("sql", sql),
		log.Int64("rows", rows),
		log.Duration("cost", cost),
	}

	switch {
	case err != nil && !errors.Is(err, logger.ErrRecordNotFound):
		log.ErrorContext(ctx, "mysql "+verb+" failed", append(attrs, log.Any("err", err))...)
	case cost >= slowSQLThreshold:
		log.WarnContext(ctx, "mysql "+verb+" slow", attrs...)
	default:
		log.InfoContext(ctx, "mysql "+verb, attrs...)
	}
}
