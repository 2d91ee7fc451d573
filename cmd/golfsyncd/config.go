package main

import (
	configlibsql "golfsync-backend/lib/configutil/libsql"
	"golfsync-backend/services/ingest"
	"golfsync-backend/services/keychain"
	"golfsync-backend/services/reports"
)

type CapturesConfig struct {
	// badger directory for raw page snapshots, empty disables capture
	Dir string `json:"dir"`
	// snapshots expire after this many days, default 14
	TtlDays int `json:"ttl_days"`
}

type Config struct {
	Port     int                 `json:"port"`
	Database configlibsql.Struct `json:"database"`
	Captures CapturesConfig      `json:"captures"`
	Keychain keychain.Options    `json:"keychain"`
	Ingest   ingest.Options      `json:"ingest"`
	Reports  reports.Options     `json:"reports"`
	// cron specs evaluated in the deployment timezone
	IngestCron string `json:"ingest_cron"`
	ReportCron string `json:"report_cron"`
}

func (c *Config) fillDefaults() {
	if c.Port == 0 {
		c.Port = 8400
	}
	if c.Captures.TtlDays == 0 {
		c.Captures.TtlDays = 14
	}
	if c.IngestCron == "" {
		c.IngestCron = "0 0 * * *"
	}
	if c.ReportCron == "" {
		c.ReportCron = "0 0 * * 0"
	}
}
