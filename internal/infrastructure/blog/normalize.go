package blog

import (
	"regexp"
	"strings"
)

// Everything outside letters, digits, whitespace and terminal punctuation
// gets stripped from extracted article text. Emoji, decorative symbols and
// markup leftovers would otherwise pollute the classifier input.
var disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s。、！？.!?]`)

// CleanText normalizes extracted article text: full-width spaces become
// ordinary spaces, characters outside the allow-list are removed, and
// surrounding whitespace is trimmed. The function is idempotent.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "　", " ")
	text = disallowed.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
