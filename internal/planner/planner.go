package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/rs/zerolog"
)

// backfillHeadroom is fetched on top of the shortfall during backfill so
// de-duplication against already-drawn questions still leaves enough rows.
const backfillHeadroom = 10

// QuestionSource supplies random published questions. Implemented by
// repository.QuestionRepository; faked in tests.
type QuestionSource interface {
	RandomByTopic(ctx context.Context, topicID uuid.UUID, limit int) ([]model.Question, error)
	RandomByTopics(ctx context.Context, topicIDs []uuid.UUID, limit int) ([]model.Question, error)
}

// Planner assembles a session's question paper across one or more topics.
type Planner struct {
	src QuestionSource
	log zerolog.Logger
}

// New creates a Planner.
func New(src QuestionSource, log zerolog.Logger) *Planner {
	return &Planner{
		src: src,
		log: log.With().Str("component", "planner").Logger(),
	}
}

// Assemble returns a deduplicated question list summing as close to target
// as inventory allows.
//
// With an explicit distribution, each topic's allotment is drawn in the
// order topics were supplied. Without one, a single combined random draw is
// made across all topics. Any shortfall is then backfilled topic by topic,
// in input order, each fetch capped at shortfall+headroom. The result is
// truncated to target on overfetch; if inventory is simply short, the
// reduced paper is returned with a warning rather than an error.
func (p *Planner) Assemble(ctx context.Context, topicIDs []uuid.UUID, target int, dist model.Distribution) ([]model.Question, error) {
	if target <= 0 || len(topicIDs) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]bool, target)
	out := make([]model.Question, 0, target)

	appendUnseen := func(qs []model.Question, cap int) {
		for _, q := range qs {
			if cap >= 0 && len(out) >= cap {
				return
			}
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			out = append(out, q)
		}
	}

	if len(dist) > 0 {
		for _, tid := range topicIDs {
			n := dist[tid]
			if n <= 0 {
				continue
			}
			qs, err := p.src.RandomByTopic(ctx, tid, n)
			if err != nil {
				return nil, fmt.Errorf("draw from topic %s: %w", tid, err)
			}
			appendUnseen(qs, -1)
		}
	} else {
		qs, err := p.src.RandomByTopics(ctx, topicIDs, target)
		if err != nil {
			return nil, fmt.Errorf("combined draw: %w", err)
		}
		appendUnseen(qs, -1)
	}

	// Backfill any shortfall from sibling topics, in input order. Topics
	// with no remaining questions contribute nothing and are skipped.
	for _, tid := range topicIDs {
		shortfall := target - len(out)
		if shortfall <= 0 {
			break
		}
		qs, err := p.src.RandomByTopic(ctx, tid, shortfall+backfillHeadroom)
		if err != nil {
			return nil, fmt.Errorf("backfill from topic %s: %w", tid, err)
		}
		appendUnseen(qs, target)
	}

	if len(out) > target {
		out = out[:target]
	}

	if len(out) < target {
		p.log.Warn().
			Int("target", target).
			Int("assembled", len(out)).
			Int("topics", len(topicIDs)).
			Msg("Question inventory short of target, continuing with available")
	}

	return out, nil
}

// EvenSplit divides target across topics in order, giving earlier topics the
// remainder. Used at session creation when no explicit distribution is given.
func EvenSplit(topicIDs []uuid.UUID, target int) model.Distribution {
	if len(topicIDs) == 0 || target <= 0 {
		return nil
	}
	base := target / len(topicIDs)
	rem := target % len(topicIDs)

	dist := make(model.Distribution, len(topicIDs))
	for i, tid := range topicIDs {
		n := base
		if i < rem {
			n++
		}
		dist[tid] = n
	}
	return dist
}
