// Package browser drives a real Chromium through playwright for the
// dashboards that render everything client side. One Session means
// one browser process, the scrapers open a fresh one per run and are
// expected to Close it no matter how the run ended.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golfsync-backend/lib/timezone"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/browser")

var (
	NavigationTimeout  = fmt.Errorf("Timed out waiting for the page to load.")
	ElementWaitTimeout = fmt.Errorf("Timed out waiting for an element to appear.")
	ClickIntercepted   = fmt.Errorf("Something is covering the element you tried to click.")
	StaleElement       = fmt.Errorf("The element went away before it could be used.")
	CaptchaDetected    = fmt.Errorf("The page is asking for human verification.")
)

const chromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Options struct {
	Headless       bool   `json:"headless"`
	ExecutablePath string `json:"executable_path"`
	ScreenshotDir  string `json:"screenshot_dir"`
	UserAgent      string `json:"user_agent"`
	// full page load budget, defaults to 30s
	PageLoadTimeout time.Duration `json:"-"`
	// default budget for element waits, defaults to 20s
	WaitTimeout time.Duration `json:"-"`
}

func (o *Options) fillDefaults() {
	if o.PageLoadTimeout <= 0 {
		o.PageLoadTimeout = 30 * time.Second
	}
	if o.WaitTimeout <= 0 {
		o.WaitTimeout = 20 * time.Second
	}
	if o.UserAgent == "" {
		o.UserAgent = chromeUserAgent
	}
}

// Install downloads the playwright driver and a chromium build. The
// cli's setup command runs this once per host.
func Install() error {
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	})
}

type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	opts    Options
}

// Open launches a chromium instance with the flags the dashboards
// tolerate. Some of them refuse to render inside an undisguised
// automation profile.
func Open(ctx context.Context, opts Options) (*Session, error) {
	ctx, span := tracer.Start(ctx, "Open")
	defer span.End()

	opts.fillDefaults()

	pw, err := playwright.Run()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to start playwright driver")
		return nil, err
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--window-size=1920,1080",
			"--disable-blink-features=AutomationControlled",
		},
	}
	if opts.ExecutablePath != "" {
		launchOpts.ExecutablePath = playwright.String(opts.ExecutablePath)
	}

	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to launch chromium")
		return nil, err
	}

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String(opts.UserAgent),
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open page")
		return nil, err
	}
	page.SetDefaultTimeout(float64(opts.WaitTimeout.Milliseconds()))

	return &Session{
		pw:      pw,
		browser: browser,
		page:    page,
		opts:    opts,
	}, nil
}

// Navigate loads a url and waits for the load event within the page
// load budget. A timeout maps to NavigationTimeout so retry policies
// can match on it.
func (s *Session) Navigate(ctx context.Context, pageUrl string) error {
	ctx, span := tracer.Start(ctx, "Navigate")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "url",
		Value: attribute.StringValue(pageUrl),
	})

	_, err := s.page.Goto(pageUrl, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(s.opts.PageLoadTimeout.Milliseconds())),
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "navigation failed")
		if isTimeout(err) {
			return fmt.Errorf("%w (%s)", NavigationTimeout, pageUrl)
		}
		return err
	}
	return nil
}

func (s *Session) CurrentURL() string {
	return s.page.URL()
}

// Pause blocks for the given duration inside the page's event loop.
// Only used to let list animations settle, never as a substitute for
// a bounded element wait.
func (s *Session) Pause(d time.Duration) {
	s.page.WaitForTimeout(float64(d.Milliseconds()))
}

// Content returns the rendered HTML of the current page.
func (s *Session) Content(ctx context.Context) (string, error) {
	return s.page.Content()
}

// Document parses the rendered page into a goquery document, the
// scrapers do their field extraction on this snapshot rather than
// round-tripping to the browser per field.
func (s *Session) Document(ctx context.Context) (*goquery.Document, error) {
	html, err := s.page.Content()
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// Screenshot saves a tagged full-page png under the configured
// directory and returns its path. Failures to capture are reported
// but never escalate, a missing diagnostic must not fail a run.
func (s *Session) Screenshot(ctx context.Context, tag string) (string, error) {
	ctx, span := tracer.Start(ctx, "Screenshot")
	defer span.End()

	dir := s.opts.ScreenshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		span.RecordError(err)
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.png", tag, timezone.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to capture screenshot")
		return "", err
	}
	span.SetAttributes(attribute.KeyValue{
		Key:   "path",
		Value: attribute.StringValue(path),
	})
	return path, nil
}

// Close tears down the page, browser and driver. Safe to call more
// than once and safe to defer right after Open.
func (s *Session) Close() error {
	var errlist []error
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			errlist = append(errlist, err)
		}
		s.page = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errlist = append(errlist, err)
		}
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errlist = append(errlist, err)
		}
		s.pw = nil
	}
	return errors.Join(errlist...)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	var pwErr *playwright.Error
	if errors.As(err, &pwErr) {
		return pwErr.Name == "TimeoutError" || strings.Contains(pwErr.Message, "Timeout")
	}
	return strings.Contains(err.Error(), "Timeout")
}

func isIntercepted(err error) bool {
	return err != nil && strings.Contains(err.Error(), "intercepts pointer events")
}

func isDetached(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "not attached") || strings.Contains(msg, "detached")
}

// mapActionError folds playwright's failure modes into the sentinels
// the retry policies understand.
func mapActionError(err error) error {
	switch {
	case err == nil:
		return nil
	case isIntercepted(err):
		return fmt.Errorf("%w: %s", ClickIntercepted, err)
	case isDetached(err):
		return fmt.Errorf("%w: %s", StaleElement, err)
	case isTimeout(err):
		return fmt.Errorf("%w: %s", ElementWaitTimeout, err)
	default:
		return err
	}
}
