package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/telemetry"
)

// newProbeClient builds the plain-http client used to check that the
// dashboards resolve at all before a cycle burns browser time on them.
// Cloudflare fronts at least one of the portals, so the probe carries
// the bypass transport and a desktop user agent.
func newProbeClient() *resty.Client {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err == nil {
		client.SetCookieJar(jar)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "services/ingest/probe")
	return client
}

// probeSources checks reachability of every enabled dashboard. The
// result is advisory: an unreachable portal gets a degraded note in
// the run report but is not skipped, the browser sometimes gets
// through where a bare HEAD does not.
func (s *Service) probeSources(ctx context.Context, sources []golf.Source) []string {
	client := newProbeClient()
	var notes []string
	for _, source := range sources {
		base := s.options.Sources.get(source).BaseURL
		if base == "" {
			continue
		}
		res, err := client.R().SetContext(ctx).Head(base)
		if err != nil {
			slog.WarnContext(ctx, "dashboard unreachable",
				"source", source, "url", base, "err", err)
			notes = append(notes, fmt.Sprintf("probe: %s unreachable: %s", source, err))
			continue
		}
		slog.DebugContext(ctx, "dashboard reachable",
			"source", source, "url", base, "status", res.StatusCode())
	}
	return notes
}
