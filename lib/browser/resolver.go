package browser

import (
	"context"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Locator is a playwright selector expression. Plain css covers
// almost everything, the "text=" and "xpath=" engines are available
// for the rest. Each scraper keeps its candidate lists in a
// locators.go so markup drift is a data change, not a logic change.
type Locator string

// how long each candidate gets before the resolver moves on
const DefaultPerCandidate = 5 * time.Second

// Resolve walks the candidates in order and returns the first one
// present in the DOM. A nil return means none matched within their
// budget, which is information, not an error: most sources have
// several generations of markup in the wild at once.
func (s *Session) Resolve(ctx context.Context, candidates []Locator, perCandidate time.Duration) *Element {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()

	if perCandidate <= 0 {
		perCandidate = DefaultPerCandidate
	}

	for _, candidate := range candidates {
		loc := s.page.Locator(string(candidate)).First()
		err := loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(float64(perCandidate.Milliseconds())),
		})
		if err != nil {
			continue
		}
		span.AddEvent("resolved", trace.WithAttributes(attribute.KeyValue{
			Key:   "locator",
			Value: attribute.StringValue(string(candidate)),
		}))
		return &Element{loc: loc, sess: s}
	}

	span.AddEvent("no candidate matched")
	return nil
}

// ResolveAll finds the first candidate with at least one match and
// returns every element it matches, in document order. Used for item
// collections like session cards and round rows.
func (s *Session) ResolveAll(ctx context.Context, candidates []Locator, perCandidate time.Duration) []Element {
	ctx, span := tracer.Start(ctx, "ResolveAll")
	defer span.End()

	if perCandidate <= 0 {
		perCandidate = DefaultPerCandidate
	}

	for _, candidate := range candidates {
		first := s.page.Locator(string(candidate)).First()
		err := first.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(float64(perCandidate.Milliseconds())),
		})
		if err != nil {
			continue
		}

		all, err := s.page.Locator(string(candidate)).All()
		if err != nil {
			continue
		}
		span.AddEvent("resolved", trace.WithAttributes(
			attribute.KeyValue{
				Key:   "locator",
				Value: attribute.StringValue(string(candidate)),
			},
			attribute.KeyValue{
				Key:   "count",
				Value: attribute.IntValue(len(all)),
			},
		))

		elements := make([]Element, len(all))
		for i, loc := range all {
			elements[i] = Element{loc: loc, sess: s}
		}
		return elements
	}

	span.AddEvent("no candidate matched")
	return nil
}

// Element is a resolved handle into the live page.
type Element struct {
	loc  playwright.Locator
	sess *Session
}

func (e Element) Fill(ctx context.Context, value string) error {
	err := e.loc.Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(float64(e.sess.opts.WaitTimeout.Milliseconds())),
	})
	return mapActionError(err)
}

// Click tries a real click first and falls back to a synthetic one
// when an overlay intercepts the pointer, a few of the dashboards
// keep decorative layers over their own buttons.
func (e Element) Click(ctx context.Context) error {
	err := e.loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(e.sess.opts.WaitTimeout.Milliseconds())),
	})
	if err == nil {
		return nil
	}
	if isIntercepted(err) {
		_, jsErr := e.loc.Evaluate("el => el.click()", nil)
		if jsErr == nil {
			return nil
		}
	}
	return mapActionError(err)
}

func (e Element) Text(ctx context.Context) (string, error) {
	text, err := e.loc.InnerText()
	if err != nil {
		return "", mapActionError(err)
	}
	return strings.TrimSpace(text), nil
}

func (e Element) Attr(ctx context.Context, name string) (string, bool) {
	val, err := e.loc.GetAttribute(name)
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

// Find resolves a sub-locator scoped to this element without waiting,
// for fields that either render with their parent or not at all.
func (e Element) Find(selector Locator) *Element {
	loc := e.loc.Locator(string(selector)).First()
	count, err := loc.Count()
	if err != nil || count == 0 {
		return nil
	}
	return &Element{loc: loc, sess: e.sess}
}
