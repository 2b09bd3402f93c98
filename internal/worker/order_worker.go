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
	OrderBatchSize    = 50
	OrderBatchTimeout = 2 * time.Second
	OrderPollTimeout  = 1 * time.Second
)

// OrderWorker persists shuffled question orders from Redis to Postgres so a
// session's paper survives cache eviction.
type OrderWorker struct {
	sessionRepo *repository.SessionRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

func NewOrderWorker(sessionRepo *repository.SessionRepository, rdb *redis.Client, log zerolog.Logger) *OrderWorker {
	return &OrderWorker{
		sessionRepo: sessionRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "order_worker").Logger(),
	}
}

type orderPayload struct {
	SessionID string   `json:"session_id"`
	Order     []string `json:"order"`
}

func (w *OrderWorker) Start(ctx context.Context) {
	w.log.Info().Msg("OrderWorker started")

	batch := make([]*orderPayload, 0, OrderBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= OrderBatchSize || time.Since(lastFlush) >= OrderBatchTimeout) {

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
			item, err := w.rdb.BLPop(ctx, OrderPollTimeout, config.WorkerKey.PersistOrderQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var p orderPayload
			if err := json.Unmarshal([]byte(item[1]), &p); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &p)
		}
	}
}

// flush writes each order; a session's order only arrives once so per-item
// writes inside one loop are cheap enough. Failed items are requeued.
func (w *OrderWorker) flush(ctx context.Context, batch []*orderPayload) {
	for _, p := range batch {
		if err := w.persist(ctx, p); err != nil {
			w.log.Error().Err(err).Str("session_id", p.SessionID).Msg("Order persist failed, requeueing")
			raw, _ := json.Marshal(p)
			w.rdb.RPush(ctx, config.WorkerKey.PersistOrderQueue, raw)
		}
	}
}

func (w *OrderWorker) persist(ctx context.Context, p *orderPayload) error {
	sessionID, err := uuid.Parse(p.SessionID)
	if err != nil {
		return err
	}

	order := make([]uuid.UUID, 0, len(p.Order))
	for _, raw := range p.Order {
		id, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		order = append(order, id)
	}

	return w.sessionRepo.SaveOrder(ctx, sessionID, order)
}
