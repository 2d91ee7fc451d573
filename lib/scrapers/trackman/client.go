// Package trackman scrapes the Trackman web portal: session list at
// /sessions, one launch monitor session per detail page, shots in a
// class-keyed metrics table.
package trackman

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"golfsync-backend/lib/browser"
	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/pagecache"
	"golfsync-backend/lib/scrapers"
)

type Client struct {
	baseURL  string
	sess     *browser.Session
	captures *pagecache.Store
}

// New builds a client around an already opened browser session. The
// caller owns the session's lifecycle, captures may be nil.
func New(sess *browser.Session, baseURL string, captures *pagecache.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		sess:     sess,
		captures: captures,
	}
}

// Authenticate drives the login form. (false, nil) means the portal
// rejected the credentials, which the coordinator treats as terminal
// for this user and source.
func (c *Client) Authenticate(ctx context.Context, creds scrapers.Credentials) (bool, error) {
	ctx, span := tracer.Start(ctx, "Authenticate")
	defer span.End()

	ok, err := scrapers.Login(ctx, c.sess, scrapers.LoginPage{
		URL:             c.baseURL + "/login",
		IdentifierField: usernameField,
		SecretField:     passwordField,
		Submit:          submitButton,
		SuccessMarkers:  dashboardMarkers,
		ErrorBanners:    errorBanners,
	}, creds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
	}
	return ok, err
}

// Enumerate lists the account's sessions, newest first as rendered.
// Items without an extractable id are dropped with a warning. An empty
// account yields an empty slice, not an error.
func (c *Client) Enumerate(ctx context.Context, limit int) ([]scrapers.SessionSummary, error) {
	ctx, span := tracer.Start(ctx, "Enumerate")
	defer span.End()

	if err := c.sess.Navigate(ctx, c.baseURL+"/sessions"); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not open sessions page")
		return nil, err
	}
	if err := c.sess.CheckCaptcha(ctx); err != nil {
		return nil, err
	}

	if c.sess.Resolve(ctx, sessionsContainer, 0) == nil {
		slog.WarnContext(ctx, "trackman: no sessions container matched, scanning whole page")
	}

	items := c.sess.ResolveAll(ctx, sessionItems, 0)
	if len(items) == 0 {
		scrapers.ReportEmptyListing(ctx, c.sess, c.captures, string(golf.SourceTrackman), "sessions")
		return nil, nil
	}

	summaries := make([]scrapers.SessionSummary, 0, len(items))
	for i, item := range items {
		if limit > 0 && len(summaries) >= limit {
			break
		}

		id, ok := scrapers.ExtractNativeID(ctx, item, sessionIDAttrs, "/sessions/")
		if !ok {
			slog.WarnContext(ctx, "trackman: dropping session item with no usable id", "index", i)
			continue
		}

		summary := scrapers.SessionSummary{
			NativeID:  id,
			DetailURL: c.baseURL + "/sessions/" + id,
		}
		if date, ok := scrapers.ChildText(ctx, item, sessionDateFields); ok {
			summary.DisplayDate = date
		}
		if label, ok := scrapers.ChildText(ctx, item, sessionLabelFields); ok {
			summary.Label = label
		} else {
			summary.Label = "Session " + id
		}
		summaries = append(summaries, summary)
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "sessions",
		Value: attribute.IntValue(len(summaries)),
	})
	return summaries, nil
}

// FetchDetail opens one session page and extracts the raw record.
// Every metadata field is independently optional, a session with shots
// but no title is still worth keeping.
func (c *Client) FetchDetail(ctx context.Context, summary scrapers.SessionSummary) (Session, error) {
	ctx, span := tracer.Start(ctx, "FetchDetail")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "native_id",
		Value: attribute.StringValue(summary.NativeID),
	})

	if err := c.sess.Navigate(ctx, summary.DetailURL); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not open session page")
		return Session{}, err
	}
	if err := c.sess.CheckCaptcha(ctx); err != nil {
		return Session{}, err
	}

	// bounded wait for the detail body, absence just means we parse
	// whatever rendered
	c.sess.Resolve(ctx, detailContainer, 0)

	html, err := c.sess.Content(ctx)
	if err != nil {
		return Session{}, err
	}
	scrapers.CaptureHTML(ctx, c.captures, string(golf.SourceTrackman), summary.NativeID, c.sess.CurrentURL(), html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Session{}, fmt.Errorf("parse session page: %w", err)
	}

	record := parseDetail(doc, summary.NativeID)
	if record.Title == "" {
		record.Title = summary.Label
	}
	if record.Date == "" {
		record.Date = summary.DisplayDate
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "shots",
		Value: attribute.IntValue(len(record.Shots)),
	})
	return record, nil
}
