package logger

import "os"

// Environment variables that override the configured level and format.
const (
	EnvLevel  = "COLONY_LOG_LEVEL"
	EnvFormat = "COLONY_LOG_FORMAT"
)

// New builds a logger from cfg after applying environment overrides.
func New(cfg Config) (Logger, error) {
	l, err := NewZapLogger(withEnv(cfg))
	if err != nil {
		return nil, err
	}
	return l, nil
}

func withEnv(cfg Config) Config {
	if level := os.Getenv(EnvLevel); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv(EnvFormat); format != "" {
		cfg.Format = format
	}
	return cfg
}
