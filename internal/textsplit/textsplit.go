// Package textsplit splits normalized article text into sentences.
//
// The input is tokenized into Unicode word-boundary segments (UAX #29),
// which is the closest language-neutral analogue to morpheme boundaries
// for Japanese text mixed with Latin script. A sentence closes whenever a
// token is exactly one of the terminal marks 。！？; any trailing buffer
// is emitted as a final sentence even without a terminator.
package textsplit

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

func isTerminal(token string) bool {
	switch token {
	case "。", "！", "？":
		return true
	}
	return false
}

// Sentences splits text into an ordered list of sentences. It is a pure
// function of its input, and the concatenation of the returned sentences
// always equals the input: no characters are lost or duplicated.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}

	var (
		sentences []string
		buf       strings.Builder
	)

	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		buf.WriteString(token)
		if isTerminal(token) {
			sentences = append(sentences, buf.String())
			buf.Reset()
		}
	}

	if buf.Len() > 0 {
		sentences = append(sentences, buf.String())
	}

	return sentences
}
