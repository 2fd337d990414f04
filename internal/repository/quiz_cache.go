package repository

import (
	"context"
	"encoding/json"
	"time"

	"signoria_backend/internal/model"
	"signoria_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const quizDetailKeyPrefix = "catalog:quiz:"

// QuizCache keeps assembled quiz details in redis. Only catalog rows are
// cached here: they are immutable to this service, so a TTL'd copy can never
// diverge. Attempt and answer state is never cached anywhere.
type QuizCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewQuizCache(rdb *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{rdb: rdb, ttl: ttl}
}

// GetDetail returns the cached detail, or nil on miss. Cache errors degrade
// to a miss; the catalog read path must keep working without redis.
func (c *QuizCache) GetDetail(ctx context.Context, quizID string) *model.QuizDetail {
	payload, err := c.rdb.Get(ctx, quizDetailKeyPrefix+quizID).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("quiz cache read failed", zap.String("quizId", quizID), zap.Error(err))
		}
		return nil
	}

	var detail model.QuizDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		logger.Log.Warn("quiz cache payload corrupt", zap.String("quizId", quizID), zap.Error(err))
		return nil
	}
	return &detail
}

func (c *QuizCache) SetDetail(ctx context.Context, detail *model.QuizDetail) {
	payload, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, quizDetailKeyPrefix+detail.ID, payload, c.ttl).Err(); err != nil {
		logger.Log.Warn("quiz cache write failed", zap.String("quizId", detail.ID), zap.Error(err))
	}
}
