package blog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"blogmood/internal/domain"
	"blogmood/internal/ports"
)

// Directory looks members up on the blog index page. Relative member
// links are resolved against the index URL's host.
type Directory struct {
	client    *http.Client
	indexURL  string
	userAgent string
	logger    *slog.Logger
}

var _ ports.MemberDirectory = (*Directory)(nil)

// NewDirectory wires an HTTP client against the member index page.
func NewDirectory(client *http.Client, indexURL, userAgent string, logger *slog.Logger) *Directory {
	if client == nil {
		client = http.DefaultClient
	}
	return &Directory{client: client, indexURL: indexURL, userAgent: userAgent, logger: logger}
}

// Members fetches and parses the full member list.
func (d *Directory) Members(ctx context.Context) ([]domain.Member, error) {
	doc, err := fetchDocument(ctx, d.client, d.indexURL, d.userAgent)
	if err != nil {
		return nil, fmt.Errorf("member directory: %w", err)
	}

	base, err := url.Parse(d.indexURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory url %s: %w", d.indexURL, err)
	}

	var members []domain.Member
	doc.Find("ul.com-blog-circle li a").Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Find("p.name").First().Text())
		href, ok := a.Attr("href")
		if name == "" || !ok {
			return
		}
		members = append(members, domain.Member{
			Name:       name,
			ListingURL: resolveHref(base, href),
		})
	})

	if len(members) == 0 {
		return nil, fmt.Errorf("member directory: no members found at %s", d.indexURL)
	}

	d.debug("member directory parsed", "members", len(members))
	return members, nil
}

// Find resolves a display name to its member entry. An unknown name is a
// fatal discovery failure for the caller.
func (d *Directory) Find(ctx context.Context, name string) (domain.Member, error) {
	members, err := d.Members(ctx)
	if err != nil {
		return domain.Member{}, err
	}

	for _, m := range members {
		if m.Name == name {
			return m, nil
		}
	}

	return domain.Member{}, fmt.Errorf("member %q not found in directory", name)
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func (d *Directory) debug(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}
