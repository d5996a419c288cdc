package logger

// Config selects the logger's level and encoding.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console

	// Development enables colored levels and DPanic panics.
	Development bool `yaml:"-"`
}

// DevelopmentConfig is used by debug builds.
func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}

// ReleaseConfig is used by release builds.
func ReleaseConfig() Config {
	return Config{
		Level:  "warn",
		Format: "json",
	}
}
