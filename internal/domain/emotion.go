package domain

import "time"

// Category is the aggregate bucket a classified sentence is folded into.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPositive, CategoryNegative, CategoryNeutral:
		return true
	}
	return false
}

// Prediction is the raw classifier output for one sentence, before the
// label is mapped onto a category.
type Prediction struct {
	Label string
	Score float64
}

// SentenceResult couples a sentence with its mapped classification.
// Created once per classified sentence, never mutated afterwards.
type SentenceResult struct {
	Sentence string
	Meaning  string
	Category Category
	Score    float64
}

// RunTotals accumulates classification scores per category over one run.
// Scores are non-negative, so every field is monotonically non-decreasing.
type RunTotals struct {
	Positive float64
	Negative float64
	Neutral  float64
}

// Add folds one score into the matching category total. Categories outside
// the closed set count as neutral, keeping the sum invariant intact.
func (t *RunTotals) Add(c Category, score float64) {
	switch c {
	case CategoryPositive:
		t.Positive += score
	case CategoryNegative:
		t.Negative += score
	default:
		t.Neutral += score
	}
}

// Sum returns the grand total across all three categories.
func (t RunTotals) Sum() float64 {
	return t.Positive + t.Negative + t.Neutral
}

// Shares returns the percentage share of each category. ok is false when
// the grand total is zero, in which case shares are undefined.
func (t RunTotals) Shares() (positive, negative, neutral float64, ok bool) {
	total := t.Sum()
	if total <= 0 {
		return 0, 0, 0, false
	}
	return t.Positive / total * 100, t.Negative / total * 100, t.Neutral / total * 100, true
}

// PostRecord summarizes one processed post for the run history.
type PostRecord struct {
	URL       string
	Sentences int
}

// RunRecord is the finalized outcome of one crawl run for one member.
type RunRecord struct {
	Member     string
	Totals     RunTotals
	Sentences  int
	Posts      []PostRecord
	StartedAt  time.Time
	FinishedAt time.Time
}
