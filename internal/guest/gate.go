package guest

import (
	"context"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// CounterStore persists the per-guest trial counter and the set of questions
// already counted against it.
type CounterStore interface {
	// MarkAnswered records that the guest answered the question and returns
	// true if this is the first time (only first-time answers count).
	MarkAnswered(ctx context.Context, guestID uuid.UUID, questionID uuid.UUID) (bool, error)
	// Count returns how many distinct questions the guest has answered.
	Count(ctx context.Context, guestID uuid.UUID) (int, error)
}

// LimitSource yields the current trial ceiling. Implementations may read it
// from settings on every call, so admin changes apply without a restart.
type LimitSource func(ctx context.Context) int

// StaticLimit returns a LimitSource with a fixed ceiling.
func StaticLimit(n int) LimitSource {
	return func(context.Context) int { return n }
}

// Gate tracks how much of the free trial an unauthenticated visitor has used.
// It only reports state; blocking and the signup prompt are the caller's
// responsibility, so different screens can react differently.
type Gate struct {
	store CounterStore
	limit LimitSource
}

// NewGate creates a Gate that checks counters against the given ceiling.
func NewGate(store CounterStore, limit LimitSource) *Gate {
	return &Gate{store: store, limit: limit}
}

// Limit returns the current trial ceiling.
func (g *Gate) Limit(ctx context.Context) int {
	return g.limit(ctx)
}

// HasReachedLimit reports whether the guest has exhausted the free trial.
func (g *Gate) HasReachedLimit(ctx context.Context, guestID uuid.UUID) (bool, error) {
	n, err := g.store.Count(ctx, guestID)
	if err != nil {
		return false, err
	}
	return n >= g.limit(ctx), nil
}

// RecordFirstAnswer counts the question against the guest's trial, once per
// question for the guest's lifetime: re-answering the same question never
// double-counts.
func (g *Gate) RecordFirstAnswer(ctx context.Context, guestID uuid.UUID, questionID uuid.UUID) error {
	_, err := g.store.MarkAnswered(ctx, guestID, questionID)
	return err
}

// Status returns the guest's trial usage summary.
func (g *Gate) Status(ctx context.Context, guestID uuid.UUID) (*model.GuestStatus, error) {
	n, err := g.store.Count(ctx, guestID)
	if err != nil {
		return nil, err
	}
	limit := g.limit(ctx)
	remaining := limit - n
	if remaining < 0 {
		remaining = 0
	}
	return &model.GuestStatus{
		Answered:     n,
		Limit:        limit,
		Remaining:    remaining,
		LimitReached: n >= limit,
	}, nil
}
