package storage

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"blogmood/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndLoadRun(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	rec := domain.RunRecord{
		Member:    "森田 ひかる",
		Totals:    domain.RunTotals{Positive: 4.5, Negative: 1.2, Neutral: 2.3},
		Sentences: 9,
		Posts: []domain.PostRecord{
			{URL: "https://example.com/diary/1", Sentences: 5},
			{URL: "https://example.com/diary/2", Sentences: 4},
		},
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
	}

	if err := store.SaveRun(ctx, rec); err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}

	got, ok, err := store.LatestRun(ctx, "森田 ひかる")
	if err != nil {
		t.Fatalf("LatestRun error: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored run")
	}
	if got.Member != rec.Member {
		t.Fatalf("unexpected member: %q", got.Member)
	}
	if math.Abs(got.Totals.Positive-4.5) > 1e-9 || math.Abs(got.Totals.Neutral-2.3) > 1e-9 {
		t.Fatalf("unexpected totals: %+v", got.Totals)
	}
	if got.Sentences != 9 {
		t.Fatalf("unexpected sentence count: %d", got.Sentences)
	}
}

func TestLatestRunPicksMostRecent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now()

	for i, sentences := range []int{3, 7} {
		rec := domain.RunRecord{
			Member:     "member",
			Sentences:  sentences,
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
		}
		if err := store.SaveRun(ctx, rec); err != nil {
			t.Fatalf("SaveRun error: %v", err)
		}
	}

	got, ok, err := store.LatestRun(ctx, "member")
	if err != nil {
		t.Fatalf("LatestRun error: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored run")
	}
	if got.Sentences != 7 {
		t.Fatalf("expected most recent run, got sentences=%d", got.Sentences)
	}
}

func TestLatestRunEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	_, ok, err := store.LatestRun(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("LatestRun error: %v", err)
	}
	if ok {
		t.Fatal("expected no run on record")
	}
}
