// Package reports mails out operational digests: a weekly summary of
// what ingestion pulled in and optional failure alerts after a cycle
// with errors.
package reports

import (
	"context"
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/rounds"
)

var tracer = otel.Tracer("services/reports")

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type Options struct {
	Smtp           SmtpConfig `json:"smtp"`
	Recipients     []string   `json:"recipients"`
	AlertOnFailure bool       `json:"alert_on_failure"`
}

type Service struct {
	store  *rounds.Store
	config Options
}

func NewService(store *rounds.Store, options Options) Service {
	return Service{
		store:  store,
		config: options,
	}
}

// WeeklySummary aggregates every ingestion cycle of the current week
// into one digest.
type WeeklySummary struct {
	WeekStart    string
	WeekEnd      string
	Cycles       int
	SourceCounts map[golf.Source]int
	ErrorCount   int
	Errors       []string
}

func (s Service) BuildWeeklySummary(ctx context.Context) (WeeklySummary, error) {
	start, stop := timezone.GetCurrentWeek(timezone.Now())
	reports, err := s.store.ListRunReportsSince(ctx, start)
	if err != nil {
		return WeeklySummary{}, err
	}

	summary := WeeklySummary{
		WeekStart:    start.Format("Jan 2, 2006"),
		WeekEnd:      stop.Format("Jan 2, 2006"),
		Cycles:       len(reports),
		SourceCounts: map[golf.Source]int{},
	}
	for _, report := range reports {
		for source, count := range report.SourceCounts {
			summary.SourceCounts[source] += count
		}
		summary.ErrorCount += len(report.Errors)
		summary.Errors = append(summary.Errors, report.Errors...)
	}
	return summary, nil
}

func (s WeeklySummary) body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ingestion summary for %s through %s.\n\n", s.WeekStart, s.WeekEnd)
	fmt.Fprintf(&b, "Cycles run: %d\n", s.Cycles)

	sources := make([]golf.Source, 0, len(s.SourceCounts))
	for source := range s.SourceCounts {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	for _, source := range sources {
		fmt.Fprintf(&b, "Rounds from %s: %d\n", source, s.SourceCounts[source])
	}

	fmt.Fprintf(&b, "Errors: %d\n", s.ErrorCount)
	if len(s.Errors) > 0 {
		b.WriteString("\n")
		for _, e := range s.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	return b.String()
}

// SendWeeklySummary builds the current week's digest and mails it to
// every configured recipient.
func (s Service) SendWeeklySummary(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "SendWeeklySummary")
	defer span.End()

	if len(s.config.Recipients) == 0 {
		return nil
	}
	summary, err := s.BuildWeeklySummary(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build weekly summary")
		return err
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("GolfSync <%s>", s.config.Smtp.EmailAddress)
	mail.To = s.config.Recipients
	mail.Subject = fmt.Sprintf("GolfSync weekly summary (%s)", summary.WeekStart)
	mail.Text = []byte(summary.body())

	err = s.send(mail)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}

// AlertFailures mails the error list of one finished cycle. It is a
// no-op when alerting is off, there are no recipients, or the cycle
// was clean.
func (s Service) AlertFailures(ctx context.Context, report golf.RunReport) error {
	ctx, span := tracer.Start(ctx, "AlertFailures")
	defer span.End()

	if !s.config.AlertOnFailure || len(s.config.Recipients) == 0 || len(report.Errors) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ingestion cycle %s finished with %d errors.\n\n", report.RunID, len(report.Errors))
	for _, e := range report.Errors {
		fmt.Fprintf(&b, "  - %s\n", e)
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("GolfSync <%s>", s.config.Smtp.EmailAddress)
	mail.To = s.config.Recipients
	mail.Subject = fmt.Sprintf("GolfSync cycle %s had errors", report.RunID)
	mail.Text = []byte(b.String())

	err := s.send(mail)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}

func (s Service) send(mail *email.Email) error {
	addr := fmt.Sprintf("%s:%d", s.config.Smtp.Server, s.config.Smtp.Port)
	err := mail.Send(
		addr,
		smtp.PlainAuth("", s.config.Smtp.EmailAddress, s.config.Smtp.Password, s.config.Smtp.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		return mail.Send(addr, nil)
	}
	return err
}
