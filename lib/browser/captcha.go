package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"golfsync-backend/lib/textutil"
)

// phrases that show up in interstitial challenge pages
var captchaKeywords = []string{
	"captcha",
	"robot",
	"human verification",
	"security check",
	"prove you're human",
	"not a robot",
}

// CheckCaptcha inspects the current page for a human verification
// challenge. On detection it saves a screenshot for the operator and
// returns CaptchaDetected. Challenges are terminal: retrying an
// automated flow against one only gets the account flagged, so
// callers must unwind instead of retrying.
func (s *Session) CheckCaptcha(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "CheckCaptcha")
	defer span.End()

	doc, err := s.Document(ctx)
	if err != nil {
		return err
	}

	reason, found := detectChallenge(doc)
	if !found {
		return nil
	}

	slog.WarnContext(ctx, "captcha challenge detected",
		"url", s.CurrentURL(),
		"reason", reason,
	)
	if _, err := s.Screenshot(ctx, "captcha"); err != nil {
		slog.WarnContext(ctx, "could not save captcha screenshot", "err", err)
	}
	return fmt.Errorf("%w (%s)", CaptchaDetected, reason)
}

// detectChallenge reports whether the document looks like a human
// verification page and which signal tripped. It checks the rendered
// text for challenge phrasing and the DOM for the usual widget
// containers.
func detectChallenge(doc *goquery.Document) (string, bool) {
	// normalized substring match so challenge phrasing split across
	// nested elements still trips
	text := doc.Text()
	for _, keyword := range captchaKeywords {
		if textutil.MatchName(text, []string{keyword}) {
			return fmt.Sprintf("page text contains %q", keyword), true
		}
	}

	widget := ""
	doc.Find("iframe").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		src = strings.ToLower(src)
		for _, provider := range []string{"recaptcha", "hcaptcha", "arkoselabs"} {
			if strings.Contains(src, provider) {
				widget = fmt.Sprintf("%s iframe", provider)
				return false
			}
		}
		return true
	})
	if widget != "" {
		return widget, true
	}

	for _, sel := range []string{
		"div[class*='captcha']",
		"div[class*='g-recaptcha']",
		"div[id*='captcha']",
	} {
		if doc.Find(sel).Length() > 0 {
			return fmt.Sprintf("widget container %s", sel), true
		}
	}

	return "", false
}
