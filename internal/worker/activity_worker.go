package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	ActivityBatchSize    = 100
	ActivityBatchTimeout = 3 * time.Second
	ActivityPollTimeout  = 1 * time.Second
)

// ActivityWorker keeps the answered/correct counters on active sessions in
// sync with the answers table. Practice mode queues one notification per
// recorded answer; the worker deduplicates session ids per batch and
// recomputes counters from session_answers, so a burst of answers collapses
// into a single update.
type ActivityWorker struct {
	sessionRepo *repository.SessionRepository
	answerRepo  *repository.AnswerRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

func NewActivityWorker(sessionRepo *repository.SessionRepository, answerRepo *repository.AnswerRepository, rdb *redis.Client, log zerolog.Logger) *ActivityWorker {
	return &ActivityWorker{
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "activity_worker").Logger(),
	}
}

type activityPayload struct {
	SessionID string `json:"session_id"`
}

func (w *ActivityWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ActivityWorker started")

	pending := make(map[string]struct{}, ActivityBatchSize)
	lastFlush := time.Now()

	for {
		if len(pending) > 0 &&
			(len(pending) >= ActivityBatchSize || time.Since(lastFlush) >= ActivityBatchTimeout) {

			w.flush(ctx, pending)
			pending = make(map[string]struct{}, ActivityBatchSize)
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining sessions...")
			w.flush(context.Background(), pending)
			return

		default:
			item, err := w.rdb.BLPop(ctx, ActivityPollTimeout, config.WorkerKey.SessionActivityQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var p activityPayload
			if err := json.Unmarshal([]byte(item[1]), &p); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			pending[p.SessionID] = struct{}{}
		}
	}
}

func (w *ActivityWorker) flush(ctx context.Context, pending map[string]struct{}) {
	for raw := range pending {
		if err := w.refresh(ctx, raw); err != nil {
			w.log.Error().Err(err).Str("session_id", raw).Msg("Activity refresh failed, requeueing")
			payload, _ := json.Marshal(activityPayload{SessionID: raw})
			w.rdb.RPush(ctx, config.WorkerKey.SessionActivityQueue, payload)
		}
	}
}

func (w *ActivityWorker) refresh(ctx context.Context, raw string) error {
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return err
	}

	answers, err := w.answerRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	return w.sessionRepo.UpdateCounts(ctx, sessionID, len(answers), correct)
}
