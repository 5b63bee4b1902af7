package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"blogmood/internal/config"
	"blogmood/internal/domain"
	"blogmood/internal/emotion"
	"blogmood/internal/infrastructure/blog"
	"blogmood/internal/infrastructure/inference"
	"blogmood/internal/infrastructure/storage"
	"blogmood/internal/politeness"
	"blogmood/internal/report"
	"blogmood/internal/transcript"
	"blogmood/internal/usecase"
)

// Application wires configuration into the crawl adapters and runs the
// emotion-analysis pipeline for one member at a time.
type Application struct {
	cfg        config.Config
	logger     *slog.Logger
	directory  *blog.Directory
	lister     *blog.Lister
	extractor  *blog.Extractor
	classifier *inference.Client
	mapping    emotion.Mapping
	pause      *politeness.Sleeper
}

// New builds a runnable application instance. The label mapping comes
// from configuration when present, otherwise the default vocabulary.
func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	mapping := emotion.Default()
	if len(cfg.Labels) > 0 {
		rules := make([]emotion.Rule, 0, len(cfg.Labels))
		for _, l := range cfg.Labels {
			rules = append(rules, emotion.Rule{
				Label:    l.Label,
				Meaning:  l.Meaning,
				Category: domain.Category(l.Category),
			})
		}
		m, err := emotion.New(rules)
		if err != nil {
			return nil, fmt.Errorf("label mapping config: %w", err)
		}
		mapping = m
	}

	client := &http.Client{Timeout: cfg.Crawler.Timeout()}
	pause := politeness.New(cfg.Crawler.DelayBounds())

	return &Application{
		cfg:        cfg,
		logger:     logger,
		directory:  blog.NewDirectory(client, cfg.Crawler.DirectoryURL, cfg.Crawler.UserAgent, logger.With("component", "directory")),
		lister:     blog.NewLister(client, cfg.Crawler.UserAgent, pause, logger.With("component", "lister")),
		extractor:  blog.NewExtractor(client, cfg.Crawler.UserAgent, logger.With("component", "extractor")),
		classifier: inference.NewClient(cfg.Classifier),
		mapping:    mapping,
		pause:      pause,
	}, nil
}

// Run crawls one member's blog end to end: resolve the member, open the
// transcript, process every post, persist the run record and report the
// totals. Discovery and transcript failures are fatal; everything else
// is recovered inside the pipeline.
func (a *Application) Run(ctx context.Context, memberName string) error {
	member, err := a.directory.Find(ctx, memberName)
	if err != nil {
		return fmt.Errorf("resolve member: %w", err)
	}
	a.logger.Info("member resolved", "member", member.Name, "listing", member.ListingURL)

	tw, err := transcript.Open(a.transcriptPath(member.Name))
	if err != nil {
		return err
	}
	defer tw.Close()

	var store *storage.Store
	if a.cfg.Output.DatabasePath != "" {
		store, err = storage.Open(a.cfg.Output.DatabasePath)
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}
		defer store.Close()

		if prev, ok, err := store.LatestRun(ctx, member.Name); err != nil {
			a.logger.Warn("run history unavailable", "error", err)
		} else if ok {
			a.logger.Info("previous run on record",
				"finished", prev.FinishedAt, "sentences", prev.Sentences)
		}
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     a.lister,
		Reader:     a.extractor,
		Classifier: a.classifier,
		Transcript: tw,
		Mapping:    a.mapping,
		Pause:      a.pause,
		Logger:     a.logger.With("component", "pipeline"),
	})

	rec, err := pipeline.Run(ctx, member)
	if err != nil {
		return err
	}

	if store != nil {
		if err := store.SaveRun(ctx, rec); err != nil {
			// History is audit only; a failed insert must not discard
			// the finished run.
			a.logger.Error("save run history", "error", err)
		}
	}

	summary := report.Summary{
		Member:    member.Name,
		Totals:    rec.Totals,
		Sentences: rec.Sentences,
		Posts:     len(rec.Posts),
	}
	summary.Print(os.Stdout)

	if err := a.writeReport(summary, rec); err != nil {
		a.logger.Error("write markdown report", "error", err)
	}

	return nil
}

func (a *Application) writeReport(summary report.Summary, rec domain.RunRecord) error {
	path := filepath.Join(a.cfg.Output.Dir, slug(rec.Member)+"_emotions.md")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	if err := report.WriteMarkdown(f, summary, rec.FinishedAt); err != nil {
		return fmt.Errorf("render report %s: %w", path, err)
	}

	a.logger.Info("markdown report written", "path", path)
	return nil
}

func (a *Application) transcriptPath(member string) string {
	return filepath.Join(a.cfg.Output.Dir, slug(member)+"_emotions.txt")
}

func slug(member string) string {
	return strings.ReplaceAll(strings.ReplaceAll(member, " ", ""), string(filepath.Separator), "")
}
