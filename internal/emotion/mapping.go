// Package emotion maps a classifier's native label vocabulary onto the
// three aggregate categories. The table is configuration, not code: it is
// tied to one specific model's labels and must be swappable when the
// classifier backend changes.
package emotion

import (
	"fmt"

	"blogmood/internal/domain"
)

// Assignment is what one raw label resolves to: a human-readable meaning
// and the category its score is folded into.
type Assignment struct {
	Meaning  string
	Category domain.Category
}

// Rule binds one raw classifier label to its assignment. Used to build a
// Mapping from configuration.
type Rule struct {
	Label    string
	Meaning  string
	Category domain.Category
}

// Mapping resolves raw classifier labels. It is total: labels outside the
// table map to ("other", neutral).
type Mapping struct {
	table map[string]Assignment
}

// Default returns the mapping for the koshin2001/Japanese-to-emotions
// label vocabulary: joy is positive, anger and sadness are negative,
// everything else is neutral.
func Default() Mapping {
	m, _ := New([]Rule{
		{Label: "LABEL_0", Meaning: "joy", Category: domain.CategoryPositive},
		{Label: "LABEL_1", Meaning: "anger", Category: domain.CategoryNegative},
		{Label: "LABEL_2", Meaning: "sadness", Category: domain.CategoryNegative},
		{Label: "LABEL_3", Meaning: "surprise", Category: domain.CategoryNeutral},
		{Label: "LABEL_4", Meaning: "neutral", Category: domain.CategoryNeutral},
		{Label: "LABEL_5", Meaning: "fear", Category: domain.CategoryNeutral},
		{Label: "LABEL_6", Meaning: "fatigue", Category: domain.CategoryNeutral},
		{Label: "LABEL_7", Meaning: "other", Category: domain.CategoryNeutral},
	})
	return m
}

// New builds a Mapping from explicit rules. Every rule must name a known
// category and a non-empty label.
func New(rules []Rule) (Mapping, error) {
	table := make(map[string]Assignment, len(rules))
	for _, r := range rules {
		if r.Label == "" {
			return Mapping{}, fmt.Errorf("label rule with empty label")
		}
		if !r.Category.Valid() {
			return Mapping{}, fmt.Errorf("label %s: unknown category %q", r.Label, r.Category)
		}
		table[r.Label] = Assignment{Meaning: r.Meaning, Category: r.Category}
	}
	return Mapping{table: table}, nil
}

// Map resolves a raw label. Unknown labels resolve to ("other", neutral)
// so that every classification lands in exactly one category.
func (m Mapping) Map(label string) Assignment {
	if a, ok := m.table[label]; ok {
		return a
	}
	return Assignment{Meaning: "other", Category: domain.CategoryNeutral}
}

// Len reports the number of configured labels.
func (m Mapping) Len() int {
	return len(m.table)
}
