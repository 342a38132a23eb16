package config

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/downfa11-org/aostore/pkg/segment"
	"github.com/downfa11-org/aostore/util"
	"gopkg.in/yaml.v3"
)

// Config holds the storage manager configuration including the on-disk file
// grid limits.
type Config struct {
	// Storage layout
	DataDir        string `yaml:"data_dir" json:"data.dir"`
	MaxConcurrency int    `yaml:"max_concurrency" json:"max.concurrency"`
	MaxColumns     int    `yaml:"max_columns" json:"max.columns"`
	SyncOnUnlink   bool   `yaml:"sync_on_unlink" json:"sync.on.unlink"`

	// Observability
	EnableExporter bool          `yaml:"enable_exporter" json:"enable.exporter"`
	ExporterPort   int           `yaml:"exporter_port" json:"exporter.port"`
	LogLevel       util.LogLevel `yaml:"log_level" json:"log_level"`
}

func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("aostore", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML/JSON config file")
	dataDirStr := fs.String("data-dir", "aostore-data", "Base directory for relation storage")
	maxConcurrencyStr := fs.String("max-concurrency", "128", "Concurrency slot capacity per relation")
	maxColumnsStr := fs.String("max-columns", "1599", "Highest secondary column index per slot")
	syncStr := fs.String("sync-on-unlink", "true", "Fsync the relation directory after unlink")
	exporterStr := fs.String("exporter", "false", "Enable Prometheus exporter")
	exporterPortStr := fs.String("exporter-port", "9100", "Exporter port")
	logLevelStr := fs.String("log-level", "info", "Log Level (debug, info, warn, error)")

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" && *configPath == "" {
		*configPath = envPath
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	applyDefaults(cfg, dataDirStr, maxConcurrencyStr, maxColumnsStr, syncStr,
		exporterStr, exporterPortStr, logLevelStr)

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, err
		}

		if strings.HasSuffix(*configPath, ".json") {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	applyExplicitFlags(cfg, fs, dataDirStr, maxConcurrencyStr, maxColumnsStr, syncStr,
		exporterStr, exporterPortStr, logLevelStr)
	applyEnvOverrides(cfg)

	cfg.Normalize()
	util.SetLevel(cfg.LogLevel)

	return cfg, nil
}

func applyDefaults(cfg *Config, dataDirStr, maxConcurrencyStr, maxColumnsStr, syncStr,
	exporterStr, exporterPortStr, logLevelStr *string) {

	cfg.DataDir = *dataDirStr
	cfg.MaxConcurrency = util.ParseInt(*maxConcurrencyStr, segment.DefaultMaxConcurrency)
	cfg.MaxColumns = util.ParseInt(*maxColumnsStr, segment.DefaultMaxColumns)
	cfg.SyncOnUnlink = util.ParseBool(*syncStr, true)
	cfg.EnableExporter = util.ParseBool(*exporterStr, false)
	cfg.ExporterPort = util.ParseInt(*exporterPortStr, 9100)
	cfg.LogLevel = util.ParseLogLevel(*logLevelStr)
}

// applyExplicitFlags re-applies only the flags the user actually set, so the
// command line wins over the config file.
func applyExplicitFlags(cfg *Config, fs *flag.FlagSet, dataDirStr, maxConcurrencyStr,
	maxColumnsStr, syncStr, exporterStr, exporterPortStr, logLevelStr *string) {

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.DataDir = *dataDirStr
		case "max-concurrency":
			cfg.MaxConcurrency = util.ParseInt(*maxConcurrencyStr, cfg.MaxConcurrency)
		case "max-columns":
			cfg.MaxColumns = util.ParseInt(*maxColumnsStr, cfg.MaxColumns)
		case "sync-on-unlink":
			cfg.SyncOnUnlink = util.ParseBool(*syncStr, cfg.SyncOnUnlink)
		case "exporter":
			cfg.EnableExporter = util.ParseBool(*exporterStr, cfg.EnableExporter)
		case "exporter-port":
			cfg.ExporterPort = util.ParseInt(*exporterPortStr, cfg.ExporterPort)
		case "log-level":
			cfg.LogLevel = util.ParseLogLevel(*logLevelStr)
		}
	})
}

// Limits bridges the configured grid dimensions to the file-number codec.
func (cfg *Config) Limits() segment.Limits {
	return segment.Limits{
		MaxConcurrency: cfg.MaxConcurrency,
		MaxColumns:     cfg.MaxColumns,
	}
}
