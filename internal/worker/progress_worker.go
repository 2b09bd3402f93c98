package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	ProgressBatchSize    = 50
	ProgressBatchTimeout = 2 * time.Second
	ProgressPollTimeout  = 1 * time.Second
)

// ProgressWorker folds per-topic answer deltas from submitted sessions into
// the user_topic_progress rollup that feeds the learner dashboard.
type ProgressWorker struct {
	progressRepo *repository.ProgressRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

func NewProgressWorker(progressRepo *repository.ProgressRepository, rdb *redis.Client, log zerolog.Logger) *ProgressWorker {
	return &ProgressWorker{
		progressRepo: progressRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "progress_worker").Logger(),
	}
}

type progressPayload struct {
	UserID    int    `json:"user_id"`
	TopicID   string `json:"topic_id"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
}

func (w *ProgressWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ProgressWorker started")

	batch := make([]*progressPayload, 0, ProgressBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= ProgressBatchSize || time.Since(lastFlush) >= ProgressBatchTimeout) {

			w.flush(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flush(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, ProgressPollTimeout, config.WorkerKey.TopicProgressQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var p progressPayload
			if err := json.Unmarshal([]byte(item[1]), &p); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &p)
		}
	}
}

func (w *ProgressWorker) flush(ctx context.Context, batch []*progressPayload) {
	if len(batch) == 0 {
		return
	}

	deltas := make([]model.TopicProgress, 0, len(batch))
	for _, p := range batch {
		topicID, err := uuid.Parse(p.TopicID)
		if err != nil {
			w.log.Error().Str("topic_id", p.TopicID).Msg("Invalid topic id in payload, dropping")
			continue
		}
		deltas = append(deltas, model.TopicProgress{
			UserID:             p.UserID,
			TopicID:            topicID,
			QuestionsAttempted: p.Attempted,
			QuestionsCorrect:   p.Correct,
		})
	}
	if len(deltas) == 0 {
		return
	}

	if err := w.progressRepo.UpsertBatch(ctx, deltas); err != nil {
		w.log.Error().Err(err).Int("count", len(batch)).Msg("Progress upsert failed, requeueing")
		for _, p := range batch {
			raw, _ := json.Marshal(p)
			w.rdb.RPush(ctx, config.WorkerKey.TopicProgressQueue, raw)
		}
	}
}
