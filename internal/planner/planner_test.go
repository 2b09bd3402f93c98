package planner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/rs/zerolog"
)

// fakeSource serves a fixed per-topic inventory in stable order.
type fakeSource struct {
	inventory map[uuid.UUID][]model.Question
}

func (f *fakeSource) RandomByTopic(_ context.Context, topicID uuid.UUID, limit int) ([]model.Question, error) {
	qs := f.inventory[topicID]
	if len(qs) > limit {
		qs = qs[:limit]
	}
	return qs, nil
}

func (f *fakeSource) RandomByTopics(_ context.Context, topicIDs []uuid.UUID, limit int) ([]model.Question, error) {
	var out []model.Question
	for _, tid := range topicIDs {
		for _, q := range f.inventory[tid] {
			if len(out) >= limit {
				return out, nil
			}
			out = append(out, q)
		}
	}
	return out, nil
}

func seedTopic(src *fakeSource, topicID uuid.UUID, n int) {
	for i := 0; i < n; i++ {
		src.inventory[topicID] = append(src.inventory[topicID], model.Question{
			ID:      uuid.New(),
			TopicID: topicID,
		})
	}
}

func newFake() *fakeSource {
	return &fakeSource{inventory: make(map[uuid.UUID][]model.Question)}
}

func assertNoDuplicates(t *testing.T, qs []model.Question) {
	t.Helper()
	seen := make(map[uuid.UUID]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("duplicate question %s in result", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestAssembleExactTargetWhenInventorySufficient(t *testing.T) {
	src := newFake()
	a, b := uuid.New(), uuid.New()
	seedTopic(src, a, 30)
	seedTopic(src, b, 30)

	p := New(src, zerolog.Nop())
	topics := []uuid.UUID{a, b}

	got, err := p.Assemble(context.Background(), topics, 20, EvenSplit(topics, 20))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 20 {
		t.Fatalf("expected exactly 20 questions, got %d", len(got))
	}
	assertNoDuplicates(t, got)
}

func TestAssembleBackfillsShortTopic(t *testing.T) {
	// Topic A has 4 published questions, topic B has 20; requesting 10 must
	// yield all 4 from A plus 6 from B.
	src := newFake()
	a, b := uuid.New(), uuid.New()
	seedTopic(src, a, 4)
	seedTopic(src, b, 20)

	p := New(src, zerolog.Nop())
	topics := []uuid.UUID{a, b}

	got, err := p.Assemble(context.Background(), topics, 10, EvenSplit(topics, 10))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(got))
	}
	assertNoDuplicates(t, got)

	fromA, fromB := 0, 0
	for _, q := range got {
		switch q.TopicID {
		case a:
			fromA++
		case b:
			fromB++
		}
	}
	if fromA != 4 || fromB != 6 {
		t.Fatalf("expected 4 from A and 6 from B, got %d and %d", fromA, fromB)
	}
}

func TestAssembleProceedsWhenInventoryShort(t *testing.T) {
	src := newFake()
	a, b := uuid.New(), uuid.New()
	seedTopic(src, a, 3)
	seedTopic(src, b, 2)

	p := New(src, zerolog.Nop())
	topics := []uuid.UUID{a, b}

	got, err := p.Assemble(context.Background(), topics, 10, EvenSplit(topics, 10))
	if err != nil {
		t.Fatalf("a shortfall must not be an error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected all 5 available questions, got %d", len(got))
	}
	assertNoDuplicates(t, got)
}

func TestAssembleSkipsEmptyTopic(t *testing.T) {
	src := newFake()
	empty, full := uuid.New(), uuid.New()
	seedTopic(src, full, 20)

	p := New(src, zerolog.Nop())
	topics := []uuid.UUID{empty, full}

	got, err := p.Assemble(context.Background(), topics, 8, EvenSplit(topics, 8))
	if err != nil {
		t.Fatalf("an empty topic must not be an error: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 questions from the non-empty topic, got %d", len(got))
	}
	for _, q := range got {
		if q.TopicID != full {
			t.Fatalf("question drawn from the empty topic %s", q.TopicID)
		}
	}
}

func TestAssembleCombinedDrawWithoutDistribution(t *testing.T) {
	src := newFake()
	a, b := uuid.New(), uuid.New()
	seedTopic(src, a, 6)
	seedTopic(src, b, 6)

	p := New(src, zerolog.Nop())

	got, err := p.Assemble(context.Background(), []uuid.UUID{a, b}, 9, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 9 {
		t.Fatalf("expected 9 questions, got %d", len(got))
	}
	assertNoDuplicates(t, got)
}

func TestAssembleNeverExceedsTarget(t *testing.T) {
	// Backfill fetches shortfall+headroom; the result must still be capped.
	src := newFake()
	a := uuid.New()
	seedTopic(src, a, 50)

	p := New(src, zerolog.Nop())

	got, err := p.Assemble(context.Background(), []uuid.UUID{a}, 7, model.Distribution{a: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 7 {
		t.Fatalf("expected exactly 7 questions, got %d", len(got))
	}
	assertNoDuplicates(t, got)
}

func TestEvenSplit(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	dist := EvenSplit([]uuid.UUID{a, b, c}, 10)

	if dist[a] != 4 || dist[b] != 3 || dist[c] != 3 {
		t.Fatalf("expected 4/3/3 split, got %d/%d/%d", dist[a], dist[b], dist[c])
	}

	total := 0
	for _, n := range dist {
		total += n
	}
	if total != 10 {
		t.Fatalf("split does not sum to target: %d", total)
	}

	if got := EvenSplit(nil, 10); got != nil {
		t.Fatalf("expected nil for no topics, got %v", got)
	}
}
