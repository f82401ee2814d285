package kafka

import (
	"Inkwell/internal/pkg/consts"
	redisutil "Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	engagementKindView = "view"
	engagementKindLike = "like"
)

// EngagementEvent 其他服务投递的互动事件
type EngagementEvent struct {
	PostID uint64 `json:"post_id"`
	Kind   string `json:"kind"`
}

// EngagementHandler 消费互动事件
// 浏览先进 Redis 缓冲由定时任务回刷，点赞直接落库
type EngagementHandler struct {
	postRepo repository.PostRepo
}

func NewEngagementHandler(postRepo repository.PostRepo) *EngagementHandler {
	return &EngagementHandler{postRepo: postRepo}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event EngagementEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.ErrorContext(ctx, "unmarshal engagement event error", "err", err)
		// 坏消息不重试
		return nil
	}

	if event.PostID == 0 {
		return errors.New("engagement event missing post_id")
	}

	switch event.Kind {
	case engagementKindView:
		field := strconv.FormatUint(event.PostID, 10)
		return redisutil.HIncrBy(ctx, consts.PostViewBufferKey, field, 1)
	case engagementKindLike:
		return s.postRepo.IncrementLikeCount(ctx, event.PostID, 1)
	default:
		log.WarnContext(ctx, "unknown engagement kind", "kind", event.Kind)
		return nil
	}
}
