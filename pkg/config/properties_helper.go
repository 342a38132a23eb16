package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/downfa11-org/aostore/pkg/segment"
	"github.com/downfa11-org/aostore/util"
)

func (cfg *Config) Normalize() {
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = "aostore-data"
	}

	// The multiplier of the file-number encoding equals MaxConcurrency, so
	// it has to stay a sane power-of-two-ish bound above every slot value.
	if cfg.MaxConcurrency < 2 {
		util.Warn("Invalid max_concurrency (%d), defaulting to %d", cfg.MaxConcurrency, segment.DefaultMaxConcurrency)
		cfg.MaxConcurrency = segment.DefaultMaxConcurrency
	}
	if cfg.MaxColumns <= 0 {
		util.Warn("Invalid max_columns (%d), defaulting to %d", cfg.MaxColumns, segment.DefaultMaxColumns)
		cfg.MaxColumns = segment.DefaultMaxColumns
	}

	if cfg.ExporterPort <= 0 {
		cfg.ExporterPort = 9100
	}
}

func applyEnvOverrides(cfg *Config) {
	overrideEnvString(&cfg.DataDir, "AOSTORE_DATA_DIR")
	overrideEnvInt(&cfg.MaxConcurrency, "AOSTORE_MAX_CONCURRENCY")
	overrideEnvInt(&cfg.MaxColumns, "AOSTORE_MAX_COLUMNS")
	overrideEnvBool(&cfg.SyncOnUnlink, "AOSTORE_SYNC_ON_UNLINK")
	overrideEnvBool(&cfg.EnableExporter, "AOSTORE_ENABLE_EXPORTER")
	overrideEnvInt(&cfg.ExporterPort, "AOSTORE_EXPORTER_PORT")

	if v := os.Getenv("AOSTORE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = util.ParseLogLevel(v)
	}
}

func overrideEnvInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*target = parsed
		}
	}
}

func overrideEnvBool(target *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*target = parsed
		}
	}
}

func overrideEnvString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
