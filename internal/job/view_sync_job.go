package job

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// ViewSyncJob 将 Redis 里缓冲的浏览量增量回刷到 MySQL
type ViewSyncJob struct {
	postRepo repository.PostRepo
}

func NewViewSyncJob(postRepo repository.PostRepo) *ViewSyncJob {
	return &ViewSyncJob{postRepo: postRepo}
}

func (s *ViewSyncJob) Run() {
	traceID := "job-view-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	deltas, err := redis.HDrain(ctx, consts.PostViewBufferKey)
	if err != nil {
		log.ErrorContext(ctx, "drain view buffer error", "err", err)
		return
	}
	if len(deltas) == 0 {
		return
	}

	log.InfoContext(ctx, "start syncing view counts", "count", len(deltas))

	successCount := 0
	for field, raw := range deltas {
		postID, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "invalid post id in view buffer", "field", field)
			continue
		}
		delta, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || delta == 0 {
			continue
		}

		if err := s.postRepo.IncrementViewCount(ctx, postID, delta); err != nil {
			log.ErrorContext(ctx, "sync view count to mysql error", "post_id", postID, "err", err)
			// 回刷失败的增量放回缓冲，下一轮重试
			if reErr := redis.HIncrBy(ctx, consts.PostViewBufferKey, field, delta); reErr != nil {
				log.ErrorContext(ctx, "requeue view delta error", "post_id", postID, "err", reErr)
			}
			continue
		}
		successCount++
	}

	log.InfoContext(ctx, "view count sync finished", "success", successCount, "total", len(deltas))
}
