// Package skytrak scrapes the SkyTrak simulator portal: practice
// sessions at /sessions, launch data in a fixed eight column table
// behind an optional data tab.
package skytrak

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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
		slog.WarnContext(ctx, "skytrak: no sessions container matched, scanning whole page")
	}

	items := c.sess.ResolveAll(ctx, sessionItems, 0)
	if len(items) == 0 {
		scrapers.ReportEmptyListing(ctx, c.sess, c.captures, string(golf.SourceSkytrak), "sessions")
		return nil, nil
	}

	summaries := make([]scrapers.SessionSummary, 0, len(items))
	for i, item := range items {
		if limit > 0 && len(summaries) >= limit {
			break
		}

		id, ok := scrapers.ExtractNativeID(ctx, item, sessionIDAttrs, "/sessions/")
		if !ok {
			slog.WarnContext(ctx, "skytrak: dropping session item with no usable id", "index", i)
			continue
		}

		summary := scrapers.SessionSummary{
			NativeID:  id,
			DetailURL: c.baseURL + "/sessions/" + id,
		}
		if date, ok := scrapers.ChildText(ctx, item, sessionDateFields); ok {
			summary.DisplayDate = date
		}
		if name, ok := scrapers.ChildText(ctx, item, sessionNameFields); ok {
			summary.Label = name
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

// FetchDetail opens one session page, flips to the data tab when one
// exists, and reads the shot table off a snapshot.
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

	c.sess.Resolve(ctx, detailContainer, 0)

	// some accounts hide the shot table behind a data tab
	if tab := c.sess.Resolve(ctx, dataTab, 2*time.Second); tab != nil {
		if err := tab.Click(ctx); err != nil {
			slog.WarnContext(ctx, "skytrak: could not open data tab", "err", err)
		} else {
			c.sess.Pause(time.Second)
		}
	}

	html, err := c.sess.Content(ctx)
	if err != nil {
		return Session{}, err
	}
	scrapers.CaptureHTML(ctx, c.captures, string(golf.SourceSkytrak), summary.NativeID, c.sess.CurrentURL(), html)

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
