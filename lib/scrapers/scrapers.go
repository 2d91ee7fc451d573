// Package scrapers holds what the three source clients share: the
// summary row they enumerate, the retry policies the coordinator wraps
// them in, and the small moves every dashboard flow repeats, pulling a
// native id out of an item, reading the first matching child field,
// archiving evidence when a page comes back empty.
package scrapers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golfsync-backend/lib/browser"
	"golfsync-backend/lib/pagecache"
	"golfsync-backend/lib/retry"
)

// Credentials is one identifier/secret pair as the login forms want
// it. The keychain service decides where a pair comes from.
type Credentials struct {
	Identifier string
	Secret     string
}

// SessionSummary is one row of a source's listing page: just enough
// to decide whether to fetch the detail page and how to find it again.
type SessionSummary struct {
	// the id the source system uses for this unit, required
	NativeID string
	// unparsed display text, the transformer owns date parsing
	DisplayDate string
	Label       string
	DetailURL   string
}

// Retry policies every client runs under. Logins get more patience
// because a slow first paint is the most common transient, detail
// fetches fail fast so one bad unit doesn't stall the batch.
var (
	LoginPolicy = retry.Policy{
		MaxAttempts:       3,
		InitialDelay:      2 * time.Second,
		BackoffMultiplier: 2,
	}
	FetchPolicy = retry.Policy{
		MaxAttempts:       2,
		InitialDelay:      3 * time.Second,
		BackoffMultiplier: 1,
	}

	LoginRetryable = []error{browser.NavigationTimeout, browser.ClickIntercepted}
	FetchRetryable = []error{browser.NavigationTimeout, browser.StaleElement}
)

// ExtractNativeID pulls the source's id for an item, first from the
// attribute names the source is known to use, then from a detail link
// path like "/sessions/42". Items with no extractable id get dropped
// by the caller, an id-less row cannot be deduplicated.
func ExtractNativeID(ctx context.Context, el browser.Element, attrs []string, pathPrefix string) (string, bool) {
	for _, attr := range attrs {
		if v, ok := el.Attr(ctx, attr); ok {
			return strings.TrimSpace(v), true
		}
	}

	href, ok := el.Attr(ctx, "href")
	if !ok {
		link := el.Find("a")
		if link == nil {
			return "", false
		}
		href, ok = link.Attr(ctx, "href")
		if !ok {
			return "", false
		}
	}
	return IDFromPath(href, pathPrefix)
}

// IDFromPath extracts the path segment after prefix:
// "/sessions/8231?tab=shots" with prefix "/sessions/" yields "8231".
func IDFromPath(href, prefix string) (string, bool) {
	idx := strings.Index(href, prefix)
	if idx < 0 {
		return "", false
	}
	rest := href[idx+len(prefix):]
	if cut := strings.IndexAny(rest, "/?#"); cut >= 0 {
		rest = rest[:cut]
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// ChildText resolves the first candidate child that renders non-empty
// text. Absence is data, not an error.
func ChildText(ctx context.Context, el browser.Element, candidates []browser.Locator) (string, bool) {
	for _, c := range candidates {
		child := el.Find(c)
		if child == nil {
			continue
		}
		text, err := child.Text(ctx)
		if err != nil || text == "" {
			continue
		}
		return text, true
	}
	return "", false
}

// CaptureHTML archives a rendered page, best effort. A failed capture
// costs us debugging evidence, never the run.
func CaptureHTML(ctx context.Context, store *pagecache.Store, source, label, pageUrl, html string) {
	if store == nil {
		return
	}
	err := store.Put(ctx, pagecache.Capture{
		Source:   source,
		Label:    label,
		Url:      pageUrl,
		Contents: []byte(html),
	})
	if err != nil {
		slog.WarnContext(ctx, "could not archive page capture",
			"source", source, "label", label, "err", err)
	}
}

// ReportEmptyListing records the evidence for a listing page with no
// items on it: a warning, a screenshot, and an HTML capture. An empty
// account is a valid state, so the caller returns an empty slice, not
// an error.
func ReportEmptyListing(ctx context.Context, sess *browser.Session, store *pagecache.Store, source, page string) {
	slog.WarnContext(ctx, "listing page has no items, account may have no data yet",
		"source", source, "page", page, "url", sess.CurrentURL())

	if _, err := sess.Screenshot(ctx, "no_"+page); err != nil {
		slog.WarnContext(ctx, "could not save empty listing screenshot", "err", err)
	}
	html, err := sess.Content(ctx)
	if err == nil {
		CaptureHTML(ctx, store, source, "empty_"+page, sess.CurrentURL(), html)
	}
}
