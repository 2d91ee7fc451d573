// Package keychain stores the portal credentials ingestion signs in
// with, one identifier/secret pair per (source, user). Secrets are
// encrypted at rest. A deployment may also configure one shared
// service-wide pair per source as a fallback for users with nothing
// of their own on file.
package keychain

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/keychain/db"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("services/keychain")

// SharedKey is a deployment-wide credential pair for one source,
// configured rather than stored.
type SharedKey struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

type Options struct {
	// base64 32-byte key or passphrase, see newEncryptor
	EncryptionKey string `json:"encryption_key"`
	// per-source fallback used when a user has no pair of their own
	Shared map[golf.Source]SharedKey `json:"shared"`
}

type Service struct {
	db     *sql.DB
	qry    *db.Queries
	enc    encryptor
	shared map[golf.Source]SharedKey
}

func NewService(database *sql.DB, options Options) (Service, error) {
	enc, err := newEncryptor(options.EncryptionKey)
	if err != nil {
		return Service{}, err
	}
	return Service{
		db:     database,
		qry:    db.New(database),
		enc:    enc,
		shared: options.Shared,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.Trim(strings.ToLower(email), " \t\n")
}

// Set stores a user's credential pair for one source, replacing any
// previous pair.
func (s Service) Set(ctx context.Context, email string, source golf.Source, creds scrapers.Credentials) error {
	ctx, span := tracer.Start(ctx, "Set")
	defer span.End()
	span.SetAttributes(attribute.String("source", string(source)))

	secret, err := s.enc.encrypt(creds.Secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to encrypt secret")
		return err
	}

	now := timezone.Now().Unix()
	err = s.qry.SetCredential(ctx, db.SetCredentialParams{
		Namespace:  string(source),
		Email:      normalizeEmail(email),
		Identifier: creds.Identifier,
		Secret:     secret,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Get returns the credential pair to use for a user against one
// source: the user's own pair when stored, otherwise the configured
// shared pair, otherwise nothing.
func (s Service) Get(ctx context.Context, email string, source golf.Source) (scrapers.Credentials, bool, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("source", string(source)))

	row, err := s.qry.GetCredential(ctx, db.GetCredentialParams{
		Namespace: string(source),
		Email:     normalizeEmail(email),
	})
	if errors.Is(err, sql.ErrNoRows) {
		shared, ok := s.shared[source]
		if ok && shared.Identifier != "" {
			return scrapers.Credentials{
				Identifier: shared.Identifier,
				Secret:     shared.Secret,
			}, true, nil
		}
		return scrapers.Credentials{}, false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scrapers.Credentials{}, false, err
	}

	secret, err := s.enc.decrypt(row.Secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decrypt secret")
		return scrapers.Credentials{}, false, err
	}
	return scrapers.Credentials{
		Identifier: row.Identifier,
		Secret:     secret,
	}, true, nil
}

// HasValidCredentials reports whether Get would produce a usable pair.
// Lookup failures read as "no", the coordinator treats that source as
// unconfigured for the user rather than failing the cycle.
func (s Service) HasValidCredentials(ctx context.Context, email string, source golf.Source) bool {
	creds, ok, err := s.Get(ctx, email, source)
	if err != nil || !ok {
		return false
	}
	return creds.Identifier != "" && creds.Secret != ""
}

func (s Service) Delete(ctx context.Context, email string, source golf.Source) error {
	return s.qry.DeleteCredential(ctx, db.DeleteCredentialParams{
		Namespace: string(source),
		Email:     normalizeEmail(email),
	})
}

// KeyInfo describes a stored pair without exposing its secret.
type KeyInfo struct {
	Source     golf.Source
	Email      string
	Identifier string
	UpdatedAt  time.Time
}

func (s Service) List(ctx context.Context) ([]KeyInfo, error) {
	rows, err := s.qry.ListCredentials(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]KeyInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, KeyInfo{
			Source:     golf.Source(row.Namespace),
			Email:      row.Email,
			Identifier: row.Identifier,
			UpdatedAt:  time.Unix(row.UpdatedAt, 0).In(timezone.Location),
		})
	}
	return out, nil
}
