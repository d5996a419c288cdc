package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_BasicLogging(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	logger := NewFromCore(core)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	logs := recorded.All()
	if len(logs) != 4 {
		t.Fatalf("Expected 4 logs, got %d", len(logs))
	}

	expectedLevels := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
	}
	for i, log := range logs {
		if log.Level != expectedLevels[i] {
			t.Errorf("Log %d: expected level %v, got %v", i, expectedLevels[i], log.Level)
		}
	}
}

func TestZapLogger_StructuredFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := NewFromCore(core)

	logger.Info("frame",
		Field{Key: "string_field", Value: "test"},
		Field{Key: "int_field", Value: 42},
		Field{Key: "float_field", Value: 3.5},
		Field{Key: "bool_field", Value: true},
		Field{Key: "duration_field", Value: time.Second},
		Err(errors.New("boom")),
	)

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log, got %d", len(logs))
	}

	fields := logs[0].ContextMap()
	if fields["string_field"] != "test" {
		t.Errorf("Expected string_field='test', got '%v'", fields["string_field"])
	}
	if fields["int_field"] != int64(42) {
		t.Errorf("Expected int_field=42, got %v", fields["int_field"])
	}
	if fields["float_field"] != 3.5 {
		t.Errorf("Expected float_field=3.5, got %v", fields["float_field"])
	}
	if fields["bool_field"] != true {
		t.Errorf("Expected bool_field=true, got %v", fields["bool_field"])
	}
	if fields["duration_field"] != time.Second {
		t.Errorf("Expected duration_field=1s, got %v", fields["duration_field"])
	}
	if fields["error"] != "boom" {
		t.Errorf("Expected error='boom', got %v", fields["error"])
	}
}

func TestZapLogger_With(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := NewFromCore(core).With(Field{Key: "component", Value: "camera"})

	logger.Info("tracking")

	logs := recorded.FilterField(zapcore.Field{Key: "component", Type: zapcore.StringType, String: "camera"}).All()
	if len(logs) != 1 {
		t.Errorf("Expected 1 log carrying the component field, got %d", len(logs))
	}
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)
	logger := NewFromCore(core)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	if recorded.Len() != 1 {
		t.Errorf("Expected 1 log at warn level, got %d", recorded.Len())
	}
}

func TestNewZapLogger_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad level", Config{Level: "loud", Format: "json"}},
		{"bad format", Config{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewZapLogger(tt.cfg); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvFormat, "json")

	cfg := withEnv(DevelopmentConfig())
	if cfg.Level != "error" {
		t.Errorf("Expected level override 'error', got %q", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Expected format override 'json', got %q", cfg.Format)
	}

	if _, err := New(DevelopmentConfig()); err != nil {
		t.Errorf("Expected logger to build, got %v", err)
	}
}

func TestContext(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := NewFromCore(core)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("from context")
	if recorded.Len() != 1 {
		t.Errorf("Expected 1 log through context logger, got %d", recorded.Len())
	}

	// Missing logger falls back to a no-op.
	FromContext(context.Background()).Info("discarded")
}
