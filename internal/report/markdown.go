package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// WriteMarkdown renders the run summary as a Markdown document with a
// totals table and, when there is anything to chart, a mermaid pie chart
// of the category shares.
func WriteMarkdown(w io.Writer, s Summary, finishedAt time.Time) error {
	md := markdown.NewMarkdown(w)

	md.H1("Emotion Analysis: " + s.Member)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Member", s.Member},
			{"Finished", finishedAt.Format("2006-01-02 15:04:05 MST")},
			{"Posts processed", fmt.Sprintf("%d", s.Posts)},
			{"Sentences classified", fmt.Sprintf("%d", s.Sentences)},
		},
	})
	md.PlainText("")

	md.H2("Category Totals")
	md.PlainText("")

	pos, neg, neu, ok := s.Totals.Shares()
	share := func(v float64) string {
		if !ok {
			return "-"
		}
		return fmt.Sprintf("%.2f%%", v)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Total", "Share"},
		Rows: [][]string{
			{"Positive", fmt.Sprintf("%.2f", s.Totals.Positive), share(pos)},
			{"Negative", fmt.Sprintf("%.2f", s.Totals.Negative), share(neg)},
			{"Neutral", fmt.Sprintf("%.2f", s.Totals.Neutral), share(neu)},
			{"**Total**", fmt.Sprintf("**%.2f**", s.Totals.Sum()), ""},
		},
	})
	md.PlainText("")

	if ok {
		writePieChart(md, pos, neg, neu)
	} else {
		md.PlainText("No sentences were classified; category shares are undefined.")
		md.PlainText("")
	}

	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Generated by blogmood*")

	return md.Build()
}

func writePieChart(md *markdown.Markdown, pos, neg, neu float64) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Emotion Category Shares"),
		piechart.WithShowData(true),
	)

	if v := uint64(math.Round(pos)); v > 0 {
		chart.LabelAndIntValue("Positive", v)
	}
	if v := uint64(math.Round(neg)); v > 0 {
		chart.LabelAndIntValue("Negative", v)
	}
	if v := uint64(math.Round(neu)); v > 0 {
		chart.LabelAndIntValue("Neutral", v)
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
