package module

import (
	"time"

	"qanda/internal/platform/config"
)

// Options holds the loader options
type Options struct {
	DataFile         string
	RunTimeout       time.Duration
	QuestionTimeout  time.Duration
	StatementTimeout time.Duration
	SyncIdentities   bool
	// Pushgateway is the base URL the loader pushes its metrics to; empty disables it
	Pushgateway      string
}

// FromConfig reads DB_DATA_FILE and the CORE_INGEST_ namespace
func FromConfig(cfg config.Conf) Options {
	in := cfg.Prefix("CORE_INGEST_")
	return Options{
		DataFile:         cfg.MayString("DB_DATA_FILE", ""),
		RunTimeout:       in.MayDuration("RUN_TIMEOUT", 0),
		QuestionTimeout:  in.MayDuration("QUESTION_TIMEOUT", 30*time.Second),
		StatementTimeout: in.MayDuration("STATEMENT_TIMEOUT", 0),
		SyncIdentities:   in.MayBool("SYNC_IDENTITIES", true),
		Pushgateway:      in.MayString("PUSHGATEWAY", ""),
	}
}
