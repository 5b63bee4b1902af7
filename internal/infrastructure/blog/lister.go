package blog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"blogmood/internal/domain"
	"blogmood/internal/politeness"
	"blogmood/internal/ports"
)

// Lister enumerates a member's post URLs one listing page at a time.
type Lister struct {
	client    *http.Client
	userAgent string
	pause     *politeness.Sleeper
	logger    *slog.Logger
}

var _ ports.PostSource = (*Lister)(nil)

// NewLister wires an HTTP client and the inter-page pause policy.
func NewLister(client *http.Client, userAgent string, pause *politeness.Sleeper, logger *slog.Logger) *Lister {
	if client == nil {
		client = http.DefaultClient
	}
	return &Lister{client: client, userAgent: userAgent, pause: pause, logger: logger}
}

// Enumerate starts a fresh enumeration from page zero. The listing URL's
// own query parameters (section and era tokens) are kept as-is; only the
// page parameter advances.
func (l *Lister) Enumerate(member domain.Member) (ports.PostIterator, error) {
	listing, err := url.Parse(member.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing url %s: %w", member.ListingURL, err)
	}

	return &postIterator{lister: l, listing: listing}, nil
}

// postIterator walks listing pages lazily. The page index only ever
// increases; the sequence ends permanently on the first page that fails
// to fetch or yields no post links.
type postIterator struct {
	lister  *Lister
	listing *url.URL
	page    int
	queue   []domain.PostRef
	done    bool
}

func (it *postIterator) Next(ctx context.Context) (domain.PostRef, bool) {
	for len(it.queue) == 0 && !it.done {
		it.fetchPage(ctx)
	}

	if len(it.queue) == 0 {
		return domain.PostRef{}, false
	}

	ref := it.queue[0]
	it.queue = it.queue[1:]
	return ref, true
}

func (it *postIterator) fetchPage(ctx context.Context) {
	if it.page > 0 {
		if err := it.lister.pause.Wait(ctx); err != nil {
			it.done = true
			return
		}
	}

	pageURL := buildPageURL(it.listing, it.page)
	it.lister.debug("fetch listing page", "url", pageURL, "page", it.page)

	doc, err := fetchDocument(ctx, it.lister.client, pageURL, it.lister.userAgent)
	if err != nil {
		// An unreachable listing page marks the end of the enumeration,
		// not an error: the run finalizes with what was accumulated.
		it.lister.debug("listing page unavailable, ending enumeration", "url", pageURL, "error", err)
		it.done = true
		return
	}

	refs := parseListing(doc, it.listing)
	if len(refs) == 0 {
		it.lister.debug("listing page empty, ending enumeration", "url", pageURL)
		it.done = true
		return
	}

	it.queue = append(it.queue, refs...)
	it.page++
}

func parseListing(doc *goquery.Document, base *url.URL) []domain.PostRef {
	var refs []domain.PostRef
	doc.Find("ul.com-blog-part li.box a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		refs = append(refs, domain.PostRef{URL: resolveHref(base, href)})
	})
	return refs
}

func buildPageURL(listing *url.URL, page int) string {
	paged := *listing
	query := paged.Query()
	query.Set("page", strconv.Itoa(page))
	paged.RawQuery = query.Encode()
	return paged.String()
}

func (l *Lister) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}
