package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// trackerTTL bounds how long live session state survives in Redis. Sessions
// older than this resume from the database instead.
const trackerTTL = 7 * 24 * time.Hour

// AnswerTracker keeps the live state of a session in Redis: the ordered
// paper, the answer hash, and the flag/hint/solution sets. Everything here
// is a cache; submission and the order worker persist the durable copies.
type AnswerTracker struct {
	rdb *redis.Client
}

// NewAnswerTracker creates a new AnswerTracker.
func NewAnswerTracker(rdb *redis.Client) *AnswerTracker {
	return &AnswerTracker{rdb: rdb}
}

// SaveOrder stores a session's question order as a Redis list.
func (t *AnswerTracker) SaveOrder(ctx context.Context, sessionID string, questionIDs []uuid.UUID) error {
	key := config.CacheKey.SessionQuestionsKey(sessionID)
	ids := make([]interface{}, len(questionIDs))
	for i, id := range questionIDs {
		ids[i] = id.String()
	}

	pipe := t.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.RPush(ctx, key, ids...)
	pipe.Expire(ctx, key, trackerTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetOrder returns the cached question order, or nil on a cache miss.
func (t *AnswerTracker) GetOrder(ctx context.Context, sessionID string) ([]uuid.UUID, error) {
	raw, err := t.rdb.LRange(ctx, config.CacheKey.SessionQuestionsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("corrupt question order entry %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SetAnswer records an option choice, overwriting any earlier one.
func (t *AnswerTracker) SetAnswer(ctx context.Context, sessionID string, questionID uuid.UUID, option string) error {
	key := config.CacheKey.SessionAnswersKey(sessionID)
	pipe := t.rdb.TxPipeline()
	pipe.HSet(ctx, key, questionID.String(), option)
	pipe.Expire(ctx, key, trackerTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetAnswers returns the answer hash (question id -> option).
func (t *AnswerTracker) GetAnswers(ctx context.Context, sessionID string) (map[string]string, error) {
	return t.rdb.HGetAll(ctx, config.CacheKey.SessionAnswersKey(sessionID)).Result()
}

// ToggleFlag flips a question's review flag and reports the new state.
func (t *AnswerTracker) ToggleFlag(ctx context.Context, sessionID string, questionID uuid.UUID) (bool, error) {
	key := config.CacheKey.SessionFlagsKey(sessionID)
	member := questionID.String()

	added, err := t.rdb.SAdd(ctx, key, member).Result()
	if err != nil {
		return false, err
	}
	if added == 1 {
		t.rdb.Expire(ctx, key, trackerTTL)
		return true, nil
	}
	if err := t.rdb.SRem(ctx, key, member).Err(); err != nil {
		return true, err
	}
	return false, nil
}

// GetFlags returns the flagged question ids.
func (t *AnswerTracker) GetFlags(ctx context.Context, sessionID string) ([]string, error) {
	return t.rdb.SMembers(ctx, config.CacheKey.SessionFlagsKey(sessionID)).Result()
}

// MarkHintUsed records that a question's hint was revealed.
func (t *AnswerTracker) MarkHintUsed(ctx context.Context, sessionID string, questionID uuid.UUID) error {
	key := config.CacheKey.SessionHintsKey(sessionID)
	pipe := t.rdb.TxPipeline()
	pipe.SAdd(ctx, key, questionID.String())
	pipe.Expire(ctx, key, trackerTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// MarkSolutionViewed records that a question's solution was revealed.
func (t *AnswerTracker) MarkSolutionViewed(ctx context.Context, sessionID string, questionID uuid.UUID) error {
	key := config.CacheKey.SessionSolutionsKey(sessionID)
	pipe := t.rdb.TxPipeline()
	pipe.SAdd(ctx, key, questionID.String())
	pipe.Expire(ctx, key, trackerTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetHintsAndSolutions returns which questions had hints or solutions viewed.
func (t *AnswerTracker) GetHintsAndSolutions(ctx context.Context, sessionID string) (hints, solutions map[string]bool, err error) {
	hintMembers, err := t.rdb.SMembers(ctx, config.CacheKey.SessionHintsKey(sessionID)).Result()
	if err != nil {
		return nil, nil, err
	}
	solutionMembers, err := t.rdb.SMembers(ctx, config.CacheKey.SessionSolutionsKey(sessionID)).Result()
	if err != nil {
		return nil, nil, err
	}

	hints = make(map[string]bool, len(hintMembers))
	for _, m := range hintMembers {
		hints[m] = true
	}
	solutions = make(map[string]bool, len(solutionMembers))
	for _, m := range solutionMembers {
		solutions[m] = true
	}
	return hints, solutions, nil
}

// GetState materializes the session's live answer sheet from the Redis keys.
// A session with no live state yields an empty sheet, not an error.
func (t *AnswerTracker) GetState(ctx context.Context, sessionID string) (*model.AnswerState, error) {
	answers, err := t.GetAnswers(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flags, err := t.GetFlags(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	hints, solutions, err := t.GetHintsAndSolutions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := model.NewAnswerState()
	for raw, option := range answers {
		qid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt answer entry %q: %w", raw, err)
		}
		state.Select(qid, option)
	}
	for _, raw := range flags {
		qid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt flag entry %q: %w", raw, err)
		}
		state.ToggleFlag(qid)
	}
	for raw := range hints {
		qid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt hint entry %q: %w", raw, err)
		}
		state.SetHintUsed(qid)
	}
	for raw := range solutions {
		qid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt solution entry %q: %w", raw, err)
		}
		state.SetSolutionViewed(qid)
	}
	return state, nil
}

// Clear removes all live state for a session after submission.
func (t *AnswerTracker) Clear(ctx context.Context, sessionID string) error {
	return t.rdb.Del(ctx,
		config.CacheKey.SessionQuestionsKey(sessionID),
		config.CacheKey.SessionAnswersKey(sessionID),
		config.CacheKey.SessionFlagsKey(sessionID),
		config.CacheKey.SessionHintsKey(sessionID),
		config.CacheKey.SessionSolutionsKey(sessionID),
	).Err()
}
