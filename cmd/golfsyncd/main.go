package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"time"

	"golfsync-backend/lib/chrono"
	"golfsync-backend/lib/configutil"
	"golfsync-backend/lib/pagecache"
	"golfsync-backend/lib/serviceutil"
	"golfsync-backend/lib/telemetry"
	"golfsync-backend/services/ingest"
	"golfsync-backend/services/keychain"
	keychaindb "golfsync-backend/services/keychain/db"
	"golfsync-backend/services/reports"
	"golfsync-backend/services/rounds"
	roundsdb "golfsync-backend/services/rounds/db"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	runNow := flag.Bool("now", false, "Trigger an ingestion cycle immediately on start.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(*verbose)
	t, err := telemetry.SetupFromEnv(ctx, "golfsyncd")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		t.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	cfg.fillDefaults()

	slog.Info("opening database...")
	db, err := cfg.Database.OpenDB()
	if err != nil {
		serviceutil.Fatal("open database", err)
	}
	_, err = db.Exec(roundsdb.Schema)
	if err != nil {
		serviceutil.Fatal("apply rounds schema", err)
	}
	_, err = db.Exec(keychaindb.Schema)
	if err != nil {
		serviceutil.Fatal("apply keychain schema", err)
	}

	var captures *pagecache.Store
	if cfg.Captures.Dir != "" {
		store, err := pagecache.Open(cfg.Captures.Dir, time.Duration(cfg.Captures.TtlDays)*24*time.Hour)
		if err != nil {
			serviceutil.Fatal("open page capture store", err)
		}
		defer store.Close()
		captures = &store
	}

	store := rounds.NewStore(db)
	keys, err := keychain.NewService(db, cfg.Keychain)
	if err != nil {
		serviceutil.Fatal("init keychain", err)
	}
	ingestService := ingest.NewService(store, keys, captures, cfg.Ingest)
	reportsService := reports.NewService(store, cfg.Reports)

	runCycle := func() {
		report, err := ingestService.RunCycle(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "ingestion cycle failed to run", "err", err)
			return
		}
		err = reportsService.AlertFailures(ctx, report)
		if err != nil {
			slog.ErrorContext(ctx, "failed to send failure alert", "err", err)
		}
	}

	cron := chrono.NewStandardCron()
	err = cron.Cron(cfg.IngestCron, runCycle)
	if err != nil {
		serviceutil.Fatal("schedule ingestion", err)
	}
	err = cron.Cron(cfg.ReportCron, func() {
		err := reportsService.SendWeeklySummary(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "failed to send weekly summary", "err", err)
		}
	})
	if err != nil {
		serviceutil.Fatal("schedule weekly summary", err)
	}

	if *runNow {
		go runCycle()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/lastrun", func(w http.ResponseWriter, r *http.Request) {
		report, ok, err := store.LatestRunReport(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no ingestion cycle has run yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}
