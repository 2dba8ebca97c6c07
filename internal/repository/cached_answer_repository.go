package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/lshigami/Coursegate/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// cachedAnswerRepository keeps each question's answer list in redis. Any redis
// failure falls through to the database.
type cachedAnswerRepository struct {
	AnswerRepository
	rdb   *redis.Client
	ttl   time.Duration
	group *singleflight.Group
}

// NewCachedAnswerRepository fronts inner with a read-through redis cache.
func NewCachedAnswerRepository(inner AnswerRepository, rdb *redis.Client, ttl time.Duration) AnswerRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &cachedAnswerRepository{
		AnswerRepository: inner,
		rdb:              rdb,
		ttl:              ttl,
		group:            &singleflight.Group{},
	}
}

func answerListKey(questionID uint) string {
	return fmt.Sprintf("question:%d:answers", questionID)
}

func (r *cachedAnswerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &cachedAnswerRepository{
		AnswerRepository: r.AnswerRepository.WithTx(tx),
		rdb:              r.rdb,
		ttl:              r.ttl,
		group:            r.group,
	}
}

func (r *cachedAnswerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error) {
	key := answerListKey(questionID)
	if raw, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var answers []model.Answer
		if err := json.Unmarshal(raw, &answers); err == nil {
			return answers, nil
		}
		log.Warn().Str("key", key).Msg("AnswerCache: dropping undecodable entry")
		r.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Warn().Err(err).Str("key", key).Msg("AnswerCache: redis get failed, reading database")
	}

	// Waiters on the same key must not inherit the leader's cancellation.
	fillCtx := context.WithoutCancel(ctx)
	v, err, shared := r.group.Do(strconv.FormatUint(uint64(questionID), 10), func() (interface{}, error) {
		answers, err := r.AnswerRepository.FindByQuestionID(fillCtx, questionID)
		if err != nil {
			return nil, err
		}
		if data, mErr := json.Marshal(answers); mErr == nil {
			if sErr := r.rdb.Set(fillCtx, key, data, r.ttl).Err(); sErr != nil {
				log.Warn().Err(sErr).Str("key", key).Msg("AnswerCache: redis set failed")
			}
		}
		return answers, nil
	})
	if err != nil && shared && ctx.Err() == nil {
		// The leader's read failed, e.g. its transaction was rolled back.
		log.Warn().Err(err).Str("key", key).Msg("AnswerCache: shared fill failed, reading database directly")
		return r.AnswerRepository.FindByQuestionID(ctx, questionID)
	}
	if err != nil {
		return nil, err
	}
	return v.([]model.Answer), nil
}

