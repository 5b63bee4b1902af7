// Package report renders the final run outcome for the operator: a plain
// console summary and a Markdown report file.
package report

import (
	"fmt"
	"io"

	"blogmood/internal/domain"
)

// Summary carries everything the operator sees once a run finalizes.
type Summary struct {
	Member    string
	Totals    domain.RunTotals
	Sentences int
	Posts     int
}

// Lines formats the summary: one total per category at two decimals and,
// when the grand total is positive, each category's percentage share.
// With a zero grand total the shares are undefined and reported as such
// instead of being divided.
func (s Summary) Lines() []string {
	lines := []string{
		fmt.Sprintf("Emotion analysis for %s (%d posts, %d sentences)", s.Member, s.Posts, s.Sentences),
		fmt.Sprintf("positive total: %.2f", s.Totals.Positive),
		fmt.Sprintf("negative total: %.2f", s.Totals.Negative),
		fmt.Sprintf("neutral total:  %.2f", s.Totals.Neutral),
	}

	pos, neg, neu, ok := s.Totals.Shares()
	if !ok {
		return append(lines, "grand total is zero; category shares are undefined")
	}

	return append(lines,
		fmt.Sprintf("positive share: %.2f%%", pos),
		fmt.Sprintf("negative share: %.2f%%", neg),
		fmt.Sprintf("neutral share:  %.2f%%", neu),
	)
}

// Print writes the summary to w, one line per entry.
func (s Summary) Print(w io.Writer) {
	for _, line := range s.Lines() {
		fmt.Fprintln(w, line)
	}
}
