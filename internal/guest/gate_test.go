package guest

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// memoryStore is an in-memory CounterStore for tests.
type memoryStore struct {
	answered map[uuid.UUID]map[uuid.UUID]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{answered: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (m *memoryStore) MarkAnswered(_ context.Context, guestID, questionID uuid.UUID) (bool, error) {
	set, ok := m.answered[guestID]
	if !ok {
		set = make(map[uuid.UUID]bool)
		m.answered[guestID] = set
	}
	if set[questionID] {
		return false, nil
	}
	set[questionID] = true
	return true, nil
}

func (m *memoryStore) Count(_ context.Context, guestID uuid.UUID) (int, error) {
	return len(m.answered[guestID]), nil
}

func TestGateCountsDistinctQuestionsOnce(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(newMemoryStore(), StaticLimit(5))
	guestID := uuid.New()
	q1 := uuid.New()

	// Answering (and re-answering) the same question counts exactly once.
	for i := 0; i < 3; i++ {
		if err := gate.RecordFirstAnswer(ctx, guestID, q1); err != nil {
			t.Fatal(err)
		}
	}

	status, err := gate.Status(ctx, guestID)
	if err != nil {
		t.Fatal(err)
	}
	if status.Answered != 1 {
		t.Fatalf("expected counter 1 after re-answering one question, got %d", status.Answered)
	}
	if status.Remaining != 4 {
		t.Fatalf("expected 4 remaining, got %d", status.Remaining)
	}
}

func TestGateReachesLimit(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(newMemoryStore(), StaticLimit(5))
	guestID := uuid.New()

	for i := 0; i < 5; i++ {
		if err := gate.RecordFirstAnswer(ctx, guestID, uuid.New()); err != nil {
			t.Fatal(err)
		}
		reached, err := gate.HasReachedLimit(ctx, guestID)
		if err != nil {
			t.Fatal(err)
		}
		if want := i == 4; reached != want {
			t.Fatalf("after %d answers: reached=%v, want %v", i+1, reached, want)
		}
	}

	status, err := gate.Status(ctx, guestID)
	if err != nil {
		t.Fatal(err)
	}
	if !status.LimitReached || status.Remaining != 0 {
		t.Fatalf("unexpected status at limit: %+v", status)
	}
}

func TestGateLimitFollowsSource(t *testing.T) {
	ctx := context.Background()
	limit := 2
	gate := NewGate(newMemoryStore(), func(context.Context) int { return limit })
	guestID := uuid.New()

	gate.RecordFirstAnswer(ctx, guestID, uuid.New())
	gate.RecordFirstAnswer(ctx, guestID, uuid.New())

	reached, err := gate.HasReachedLimit(ctx, guestID)
	if err != nil {
		t.Fatal(err)
	}
	if !reached {
		t.Fatal("expected limit reached at ceiling 2")
	}

	// Raising the setting takes effect without rebuilding the gate.
	limit = 5
	reached, err = gate.HasReachedLimit(ctx, guestID)
	if err != nil {
		t.Fatal(err)
	}
	if reached {
		t.Fatal("raised ceiling must unblock the guest immediately")
	}

	status, err := gate.Status(ctx, guestID)
	if err != nil {
		t.Fatal(err)
	}
	if status.Limit != 5 || status.Remaining != 3 {
		t.Fatalf("unexpected status after raise: %+v", status)
	}
}

func TestGateGuestsAreIndependent(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(newMemoryStore(), StaticLimit(2))
	g1, g2 := uuid.New(), uuid.New()

	gate.RecordFirstAnswer(ctx, g1, uuid.New())
	gate.RecordFirstAnswer(ctx, g1, uuid.New())

	reached, err := gate.HasReachedLimit(ctx, g2)
	if err != nil {
		t.Fatal(err)
	}
	if reached {
		t.Fatal("a fresh guest must not inherit another guest's counter")
	}
}
