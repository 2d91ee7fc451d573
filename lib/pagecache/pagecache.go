// Package pagecache archives raw rendered HTML from the source
// dashboards. When a selector chain stops matching, the capture from
// the failing run is the only evidence of what the page actually
// looked like, so every fetch and every empty enumeration stores one.
package pagecache

import (
	"bytes"
	"context"
	"encoding/gob"
	"net/url"
	"strings"
	"time"

	"golfsync-backend/lib/timezone"

	"github.com/PuerkitoBio/purell"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("lib/pagecache")

var CaptureNotFound = badger.ErrKeyNotFound

// captures older than this are dropped on read and skipped on list
const DefaultTTL = 14 * 24 * time.Hour

type Capture struct {
	Source     string
	Label      string
	Url        string
	Contents   []byte
	CapturedAt int64
	ExpiresAt  int64
}

type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// New wraps an opened badger database. Binaries open a directory
// backed db, tests pass one with WithInMemory(true).
func New(db *badger.DB, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return Store{db: db, ttl: ttl}
}

func Open(dir string, ttl time.Duration) (Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return Store{}, err
	}
	return New(db, ttl), nil
}

func (s Store) Close() error {
	return s.db.Close()
}

func key(source, label, pageUrl string) string {
	id := pageUrl
	parsed, err := url.Parse(pageUrl)
	if err == nil && parsed.Host != "" {
		id = purell.NormalizeURL(
			parsed,
			purell.FlagsSafe|
				purell.FlagsUsuallySafeNonGreedy|
				purell.FlagRemoveDirectoryIndex|
				purell.FlagRemoveFragment|
				purell.FlagSortQuery,
		)
	}
	return source + ":" + label + ":" + id
}

func (s Store) Put(ctx context.Context, capture Capture) error {
	ctx, span := tracer.Start(ctx, "Put")
	defer span.End()

	now := timezone.Now()
	capture.CapturedAt = now.Unix()
	capture.ExpiresAt = now.Add(s.ttl).Unix()

	k := key(capture.Source, capture.Label, capture.Url)
	span.SetAttributes(attribute.KeyValue{
		Key:   "cache_key",
		Value: attribute.StringValue(k),
	})

	serialized := bytes.NewBuffer(nil)
	encoder := gob.NewEncoder(serialized)
	err := encoder.Encode(capture)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize capture")
		return err
	}

	tx := s.db.NewTransaction(true)
	defer tx.Commit()

	err = tx.Set([]byte(k), serialized.Bytes())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set badger item")
		return err
	}

	return nil
}

func (s Store) Get(ctx context.Context, source, label, pageUrl string) (Capture, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	k := key(source, label, pageUrl)
	span.SetAttributes(attribute.KeyValue{
		Key:   "cache_key",
		Value: attribute.StringValue(k),
	})

	tx := s.db.NewTransaction(false)
	defer tx.Discard()
	item, err := tx.Get([]byte(k))
	if err == badger.ErrKeyNotFound {
		return Capture{}, CaptureNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return Capture{}, err
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy cached item")
		return Capture{}, err
	}

	decoder := gob.NewDecoder(bytes.NewBuffer(serialized))

	var cached Capture
	err = decoder.Decode(&cached)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize capture")
		return Capture{}, err
	}

	if timezone.Now().Unix() >= cached.ExpiresAt {
		span.AddEvent("delete expired capture", trace.WithAttributes(attribute.KeyValue{
			Key:   "key",
			Value: attribute.StringValue(k),
		}))

		tx := s.db.NewTransaction(true)
		defer tx.Commit()

		err = tx.Delete([]byte(k))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to delete expired key")
			return Capture{}, CaptureNotFound
		}

		return Capture{}, CaptureNotFound
	}

	return cached, nil
}

type CaptureInfo struct {
	Source     string
	Label      string
	Url        string
	Size       int
	CapturedAt time.Time
}

// List returns metadata for every live capture, optionally filtered
// by source. Contents stay on disk, dump a single capture with Get.
func (s Store) List(ctx context.Context, source string) ([]CaptureInfo, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	var out []CaptureInfo
	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		if source != "" {
			opts.Prefix = []byte(source + ":")
		}
		it := tx.NewIterator(opts)
		defer it.Close()

		now := timezone.Now().Unix()
		for it.Rewind(); it.Valid(); it.Next() {
			if source != "" && !strings.HasPrefix(string(it.Item().Key()), source+":") {
				continue
			}
			serialized, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var cached Capture
			err = gob.NewDecoder(bytes.NewBuffer(serialized)).Decode(&cached)
			if err != nil {
				return err
			}
			if now >= cached.ExpiresAt {
				continue
			}
			out = append(out, CaptureInfo{
				Source:     cached.Source,
				Label:      cached.Label,
				Url:        cached.Url,
				Size:       len(cached.Contents),
				CapturedAt: time.Unix(cached.CapturedAt, 0).In(timezone.Location),
			})
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to iterate captures")
		return nil, err
	}

	return out, nil
}
