package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blogmood/internal/domain"
	"blogmood/internal/emotion"
	"blogmood/internal/politeness"
	"blogmood/internal/ports"
	"blogmood/internal/textsplit"
)

// PipelineDeps wires the crawl adapters into the aggregation pipeline.
type PipelineDeps struct {
	Source     ports.PostSource
	Reader     ports.PostReader
	Classifier ports.Classifier
	Transcript ports.Transcript
	Mapping    emotion.Mapping
	Pause      *politeness.Sleeper
	Logger     *slog.Logger
}

// Pipeline runs one end-to-end emotion analysis for one member:
// enumerate posts, extract and segment each, classify every non-blank
// sentence, fold scores into category totals and write the transcript.
// A failing post or sentence never aborts the run; enumeration ending
// (empty or unreachable listing page) finalizes it.
type Pipeline struct {
	source     ports.PostSource
	reader     ports.PostReader
	classifier ports.Classifier
	transcript ports.Transcript
	mapping    emotion.Mapping
	pause      *politeness.Sleeper
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:     deps.Source,
		reader:     deps.Reader,
		classifier: deps.Classifier,
		transcript: deps.Transcript,
		mapping:    deps.Mapping,
		pause:      deps.Pause,
		logger:     logger,
	}
}

// Run crawls every post of one member in listing order and returns the
// finalized run record. Totals and transcript reflect document order;
// only context cancellation and transcript write failures abort a run
// in flight.
func (p *Pipeline) Run(ctx context.Context, member domain.Member) (domain.RunRecord, error) {
	rec := domain.RunRecord{
		Member:    member.Name,
		StartedAt: time.Now(),
	}

	it, err := p.source.Enumerate(member)
	if err != nil {
		return rec, fmt.Errorf("enumerate posts for %s: %w", member.Name, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return rec, err
		}

		ref, ok := it.Next(ctx)
		if !ok {
			break
		}

		if err := p.processPost(ctx, ref, &rec); err != nil {
			return rec, err
		}

		if err := p.pause.Wait(ctx); err != nil {
			return rec, err
		}
	}

	rec.FinishedAt = time.Now()
	return rec, nil
}

// processPost extracts, segments and classifies one post, folding every
// successful classification into the run record. A skipped post or
// sentence contributes exactly zero to the totals. Only transcript
// failures propagate as errors.
func (p *Pipeline) processPost(ctx context.Context, ref domain.PostRef, rec *domain.RunRecord) error {
	text, found, err := p.reader.ReadPost(ctx, ref)
	if err != nil {
		p.logger.Warn("post fetch failed, skipping", "url", ref.URL, "error", err)
		return nil
	}
	if !found {
		p.logger.Info("post has no article body, skipping", "url", ref.URL)
		return nil
	}

	count := 0
	for _, sentence := range textsplit.Sentences(text) {
		if strings.TrimSpace(sentence) == "" {
			continue
		}

		pred, err := p.classifier.Classify(ctx, sentence)
		if err != nil {
			p.logger.Warn("sentence classification failed, skipping",
				"url", ref.URL, "sentence", sentence, "error", err)
			continue
		}

		assignment := p.mapping.Map(pred.Label)
		result := domain.SentenceResult{
			Sentence: sentence,
			Meaning:  assignment.Meaning,
			Category: assignment.Category,
			Score:    pred.Score,
		}

		if err := p.transcript.Append(result); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}

		rec.Totals.Add(result.Category, result.Score)
		rec.Sentences++
		count++
	}

	rec.Posts = append(rec.Posts, domain.PostRecord{URL: ref.URL, Sentences: count})
	p.logger.Info("post processed", "url", ref.URL, "sentences", count)
	return nil
}
