package domain

import (
	"math"
	"testing"
)

func TestRunTotalsAdd(t *testing.T) {
	t.Parallel()

	var totals RunTotals
	totals.Add(CategoryPositive, 0.9)
	totals.Add(CategoryNegative, 0.5)
	totals.Add(CategoryNeutral, 0.3)
	totals.Add(Category("bogus"), 0.2) // outside the closed set counts as neutral

	if totals.Positive != 0.9 || totals.Negative != 0.5 || totals.Neutral != 0.5 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if math.Abs(totals.Sum()-1.9) > 1e-9 {
		t.Fatalf("expected sum 1.9, got %f", totals.Sum())
	}
}

func TestRunTotalsShares(t *testing.T) {
	t.Parallel()

	totals := RunTotals{Positive: 6.0, Negative: 3.0, Neutral: 1.0}
	pos, neg, neu, ok := totals.Shares()
	if !ok {
		t.Fatal("expected defined shares")
	}
	if math.Abs(pos-60.0) > 1e-9 || math.Abs(neg-30.0) > 1e-9 || math.Abs(neu-10.0) > 1e-9 {
		t.Fatalf("unexpected shares: %f %f %f", pos, neg, neu)
	}
}

func TestRunTotalsSharesZero(t *testing.T) {
	t.Parallel()

	var totals RunTotals
	if _, _, _, ok := totals.Shares(); ok {
		t.Fatal("shares must be undefined when the grand total is zero")
	}
}

func TestCategoryValid(t *testing.T) {
	t.Parallel()

	for _, c := range []Category{CategoryPositive, CategoryNegative, CategoryNeutral} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("joy").Valid() {
		t.Error("meanings are not categories")
	}
}
