package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"
	"advent_quiz_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RankingService serves the per-week and final leaderboards. Result rows are
// produced by the external scoring job and read-only here; a short-TTL redis
// cache shields the hot read path, invalidated by expiry alone.
type RankingService struct {
	Results  ResultStore
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewRankingService(results ResultStore, rdb *redis.Client, cacheTTL time.Duration) *RankingService {
	return &RankingService{Results: results, Redis: rdb, CacheTTL: cacheTTL}
}

// ResultsForWeek returns the scored rows for week 1-3 or the final standing
// (week 4), rank 1 first. Any other week is rejected.
func (s *RankingService) ResultsForWeek(ctx context.Context, week int) ([]model.Result, error) {
	if week < 1 || week > 4 {
		return nil, util.ErrInvalidWeekNumber
	}

	cacheKey := fmt.Sprintf("ranking:week:%d", week)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var results []model.Result
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results, nil
			}
		}
	}

	results, err := s.Results.ResultsForWeek(week)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if payload, err := json.Marshal(results); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("ranking cache write failed", zap.Int("week", week), zap.Error(err))
			}
		}
	}

	return results, nil
}

// PositionFor builds the public placement summary for one user. A user
// without a Result row gets an all-absent position, not an error.
func (s *RankingService) PositionFor(userID string) (model.UserPosition, error) {
	result, err := s.Results.FindByUserID(userID)
	if err != nil {
		return model.UserPosition{}, err
	}
	return model.PositionFromResult(result), nil
}
