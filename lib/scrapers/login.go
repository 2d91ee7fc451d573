package scrapers

import (
	"context"
	"log/slog"
	"time"

	"golfsync-backend/lib/browser"
)

// LoginPage describes one source's login flow as data: where the form
// lives and the ordered candidate selectors for each control. The
// per-source locators.go files own these values.
type LoginPage struct {
	URL             string
	IdentifierField []browser.Locator
	SecretField     []browser.Locator
	Submit          []browser.Locator
	// any one of these appearing after submit means we are in
	SuccessMarkers []browser.Locator
	// rendered when the dashboard rejects the credentials
	ErrorBanners []browser.Locator
}

// Login drives a login form end to end. The bool reports whether the
// dashboard accepted the credentials. (false, nil) is a confirmed
// rejection, missing form, error banner, or no dashboard marker, and
// must not be retried. Errors are transport failures or a challenge
// page, the retry policy decides which of those are worth another
// attempt.
func Login(ctx context.Context, sess *browser.Session, page LoginPage, creds Credentials) (bool, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	if err := sess.Navigate(ctx, page.URL); err != nil {
		return false, err
	}
	if err := sess.CheckCaptcha(ctx); err != nil {
		return false, err
	}

	identifier := sess.Resolve(ctx, page.IdentifierField, 0)
	secret := sess.Resolve(ctx, page.SecretField, 0)
	if identifier == nil || secret == nil {
		slog.WarnContext(ctx, "login form did not match any known markup", "url", page.URL)
		sess.Screenshot(ctx, "login_failed")
		return false, nil
	}

	if err := identifier.Fill(ctx, creds.Identifier); err != nil {
		return false, err
	}
	if err := secret.Fill(ctx, creds.Secret); err != nil {
		return false, err
	}

	submit := sess.Resolve(ctx, page.Submit, 0)
	if submit == nil {
		slog.WarnContext(ctx, "no submit control found on login page", "url", page.URL)
		sess.Screenshot(ctx, "login_failed")
		return false, nil
	}
	if err := submit.Click(ctx); err != nil {
		return false, err
	}

	// let the redirect land before inspecting the result
	sess.Pause(2 * time.Second)
	if err := sess.CheckCaptcha(ctx); err != nil {
		return false, err
	}

	if marker := sess.Resolve(ctx, page.SuccessMarkers, 0); marker != nil {
		slog.InfoContext(ctx, "login accepted", "url", sess.CurrentURL())
		return true, nil
	}

	if banner := sess.Resolve(ctx, page.ErrorBanners, time.Second); banner != nil {
		text, _ := banner.Text(ctx)
		slog.WarnContext(ctx, "login rejected", "url", page.URL, "banner", text)
	} else {
		slog.WarnContext(ctx, "login produced neither a dashboard nor an error banner", "url", page.URL)
	}
	sess.Screenshot(ctx, "login_failed")
	return false, nil
}
