package blog

import (
	"context"
	"log/slog"
	"net/http"

	"blogmood/internal/domain"
	"blogmood/internal/ports"
)

// Extractor fetches one post and isolates the article body text.
type Extractor struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

var _ ports.PostReader = (*Extractor)(nil)

// NewExtractor wires an HTTP client for post pages.
func NewExtractor(client *http.Client, userAgent string, logger *slog.Logger) *Extractor {
	if client == nil {
		client = http.DefaultClient
	}
	return &Extractor{client: client, userAgent: userAgent, logger: logger}
}

// ReadPost fetches the post document and returns its cleaned article
// body. A missing article or body container returns found=false rather
// than an error; transport failures surface as err. Either way the
// caller skips the post and carries on.
func (e *Extractor) ReadPost(ctx context.Context, ref domain.PostRef) (string, bool, error) {
	doc, err := fetchDocument(ctx, e.client, ref.URL, e.userAgent)
	if err != nil {
		return "", false, err
	}

	article := doc.Find("article.post").First()
	if article.Length() == 0 {
		e.debug("post has no article container", "url", ref.URL)
		return "", false, nil
	}

	body := article.Find("div.box-article").First()
	if body.Length() == 0 {
		e.debug("post has no body container", "url", ref.URL)
		return "", false, nil
	}

	return CleanText(body.Text()), true, nil
}

func (e *Extractor) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
