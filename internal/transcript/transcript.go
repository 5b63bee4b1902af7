// Package transcript writes the append-only per-sentence record of a run.
package transcript

import (
	"fmt"
	"os"

	"blogmood/internal/domain"
	"blogmood/internal/ports"
)

// Writer appends one record per classified sentence, in processing
// order: the sentence line, a meaning/score line, then a blank separator.
type Writer struct {
	file *os.File
}

var _ ports.Transcript = (*Writer)(nil)

// Open creates (or truncates) the transcript file for a fresh run.
// Failure here is fatal for the caller: no crawling starts without a
// writable transcript.
func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}
	return &Writer{file: f}, nil
}

// Append records one classified sentence. Records are never rewritten or
// reordered.
func (w *Writer) Append(res domain.SentenceResult) error {
	_, err := fmt.Fprintf(w.file, "%s\nemotion: %s, score: %.4f\n\n", res.Sentence, res.Meaning, res.Score)
	if err != nil {
		return fmt.Errorf("append transcript: %w", err)
	}
	return nil
}

// Close flushes and closes the transcript file.
func (w *Writer) Close() error {
	return w.file.Close()
}
