// Package arccos scrapes the Arccos web dashboard: GPS-tracked rounds
// at /rounds, hole cards that expand into per-shot lists, and a stats
// tab per round. The only source with real hole data.
package arccos

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
	"golfsync-backend/lib/textutil"
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
		IdentifierField: emailField,
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

	if err := c.sess.Navigate(ctx, c.baseURL+"/rounds"); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not open rounds page")
		return nil, err
	}
	if err := c.sess.CheckCaptcha(ctx); err != nil {
		return nil, err
	}

	if c.sess.Resolve(ctx, roundsContainer, 0) == nil {
		slog.WarnContext(ctx, "arccos: no rounds container matched, scanning whole page")
	}

	items := c.sess.ResolveAll(ctx, roundItems, 0)
	if len(items) == 0 {
		scrapers.ReportEmptyListing(ctx, c.sess, c.captures, string(golf.SourceArccos), "rounds")
		return nil, nil
	}

	summaries := make([]scrapers.SessionSummary, 0, len(items))
	for i, item := range items {
		if limit > 0 && len(summaries) >= limit {
			break
		}

		id, ok := scrapers.ExtractNativeID(ctx, item, roundIDAttrs, "/rounds/")
		if !ok {
			slog.WarnContext(ctx, "arccos: dropping round item with no usable id", "index", i)
			continue
		}

		summary := scrapers.SessionSummary{
			NativeID:  id,
			DetailURL: c.baseURL + "/rounds/" + id,
		}
		if date, ok := scrapers.ChildText(ctx, item, roundDateFields); ok {
			summary.DisplayDate = date
		}
		if course, ok := scrapers.ChildText(ctx, item, roundCourseFields); ok {
			summary.Label = course
		} else {
			summary.Label = "Round " + id
		}
		summaries = append(summaries, summary)
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "rounds",
		Value: attribute.IntValue(len(summaries)),
	})
	return summaries, nil
}

// FetchDetail opens a round page, reads the header and scorecard from
// a snapshot, then walks the hole cards interactively to pull each
// hole's shot list, and finally flips to the stats tab.
func (c *Client) FetchDetail(ctx context.Context, summary scrapers.SessionSummary) (Round, error) {
	ctx, span := tracer.Start(ctx, "FetchDetail")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "native_id",
		Value: attribute.StringValue(summary.NativeID),
	})

	if err := c.sess.Navigate(ctx, summary.DetailURL); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not open round page")
		return Round{}, err
	}
	if err := c.sess.CheckCaptcha(ctx); err != nil {
		return Round{}, err
	}

	c.sess.Resolve(ctx, detailContainer, 0)

	html, err := c.sess.Content(ctx)
	if err != nil {
		return Round{}, err
	}
	scrapers.CaptureHTML(ctx, c.captures, string(golf.SourceArccos), summary.NativeID, c.sess.CurrentURL(), html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Round{}, fmt.Errorf("parse round page: %w", err)
	}

	round := parseRoundMeta(doc, summary.NativeID)
	if round.CourseName == "" {
		round.CourseName = summary.Label
	}
	if round.Date == "" {
		round.Date = summary.DisplayDate
	}

	round.Holes = c.fetchHoles(ctx)
	round.Stats = c.fetchStats(ctx)

	span.SetAttributes(attribute.KeyValue{
		Key:   "holes",
		Value: attribute.IntValue(len(round.Holes)),
	})
	return round, nil
}

// fetchHoles walks the hole cards in order. Each card is expanded,
// its shot list read, and the card closed again before moving on.
// A card that refuses to expand loses its shots, not the round.
func (c *Client) fetchHoles(ctx context.Context) []Hole {
	cards := c.sess.ResolveAll(ctx, holeCards, 0)
	if len(cards) == 0 {
		slog.WarnContext(ctx, "arccos: round page has no hole cards")
		return nil
	}

	holes := make([]Hole, 0, len(cards))
	for i, card := range cards {
		hole := Hole{Number: int64(i + 1)}
		if text, ok := scrapers.ChildText(ctx, card, holeNumberFields); ok {
			if n := textutil.ParseLeadingInt(text); n != nil {
				hole.Number = *n
			}
		}
		hole.Par = childInt(ctx, card, holeParFields)
		hole.Score = childInt(ctx, card, holeScoreFields)
		hole.DistanceYards = childInt(ctx, card, holeYardsFields)
		hole.Putts = childInt(ctx, card, holePuttsFields)

		if class, ok := card.Attr(ctx, "class"); ok {
			if hasToken(class, "fairway-hit") {
				v := true
				hole.FairwayHit = &v
			}
			if hasToken(class, "gir") {
				v := true
				hole.GreenInRegulation = &v
			}
		}

		hole.Shots = c.fetchHoleShots(ctx, card, hole.Number)
		holes = append(holes, hole)
	}
	return holes
}

func (c *Client) fetchHoleShots(ctx context.Context, card browser.Element, holeNumber int64) []Shot {
	if err := card.Click(ctx); err != nil {
		slog.WarnContext(ctx, "arccos: could not expand hole card",
			"hole", holeNumber, "err", err)
		return nil
	}
	// expansion animation
	c.sess.Pause(time.Second)

	items := c.sess.ResolveAll(ctx, shotItems, 2*time.Second)
	shots := make([]Shot, 0, len(items))
	for _, item := range items {
		shot := Shot{}
		if club, ok := scrapers.ChildText(ctx, item, shotClubFields); ok {
			shot.Club = club
		}
		if dist, ok := scrapers.ChildText(ctx, item, shotDistFields); ok {
			shot.DistanceYards = textutil.ParseMeasurement(dist)
		}
		if class, ok := item.Attr(ctx, "class"); ok {
			shot.FromLocation = fromLocationOf(class)
			shot.ToLocation = toLocationOf(class)
			shot.IsPenalty = hasToken(class, "penalty")
		}
		shots = append(shots, shot)
	}

	if btn := c.sess.Resolve(ctx, closeCard, time.Second); btn != nil {
		if err := btn.Click(ctx); err != nil {
			slog.WarnContext(ctx, "arccos: could not close hole card",
				"hole", holeNumber, "err", err)
		}
	}
	c.sess.Pause(500 * time.Millisecond)
	return shots
}

// fetchStats flips to the stats tab and parses whatever renders.
// Missing tab or unreadable numbers just mean no round stats.
func (c *Client) fetchStats(ctx context.Context) *TabStats {
	tab := c.sess.Resolve(ctx, statsTab, 2*time.Second)
	if tab == nil {
		return nil
	}
	if err := tab.Click(ctx); err != nil {
		slog.WarnContext(ctx, "arccos: could not open stats tab", "err", err)
		return nil
	}
	c.sess.Pause(time.Second)

	doc, err := c.sess.Document(ctx)
	if err != nil {
		slog.WarnContext(ctx, "arccos: could not snapshot stats tab", "err", err)
		return nil
	}
	return parseStats(doc)
}

func childInt(ctx context.Context, el browser.Element, candidates []browser.Locator) *int64 {
	text, ok := scrapers.ChildText(ctx, el, candidates)
	if !ok {
		return nil
	}
	return textutil.ParseLeadingInt(text)
}
