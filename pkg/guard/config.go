package guard

import "github.com/bwhmather/validation/pkg/config"

// DefaultMaxBodyBytes is the default body size limit (1 MiB).
const DefaultMaxBodyBytes = 1 << 20

// Config controls decoding limits and rejection logging.
type Config struct {
	// MaxBodyBytes caps the size of decoded bodies. Zero or less means the default.
	MaxBodyBytes int64 `env:"GUARD_MAX_BODY_BYTES" envDefault:"1048576"`
	// LogRejections logs every failed check at info level.
	LogRejections bool `env:"GUARD_LOG_REJECTIONS" envDefault:"true"`
	// StrictJSON rejects bodies with data after the first JSON value.
	StrictJSON bool `env:"GUARD_STRICT_JSON" envDefault:"true"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		MaxBodyBytes:  DefaultMaxBodyBytes,
		LogRejections: true,
		StrictJSON:    true,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) maxBodyBytes() int64 {
	if c.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}
	return c.MaxBodyBytes
}
