package config

import (
	"time"

	"github.com/ytget/wallpanel/internal/logger"
)

// Config is the startup configuration, corresponding to wallpanel.yml.
type Config struct {
	Origin  string        `yaml:"origin" koanf:"origin"`
	Log     logger.Config `yaml:"log" koanf:"log"`
	Preview PreviewConfig `yaml:"preview" koanf:"preview"`
	QR      QRConfig      `yaml:"qr" koanf:"qr"`
}

// PreviewConfig tunes preview fetching.
type PreviewConfig struct {
	Timeout      time.Duration `yaml:"timeout" koanf:"timeout"`
	MaxDimension int           `yaml:"max_dimension" koanf:"max_dimension"`
}

// QRConfig tunes QR rendering.
type QRConfig struct {
	Size int `yaml:"size" koanf:"size"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Origin: DefaultOrigin,
		Log: logger.Config{
			Level:  "info",
			Format: "text",
		},
		Preview: PreviewConfig{
			Timeout:      15 * time.Second,
			MaxDimension: 720,
		},
		QR: QRConfig{
			Size: 256,
		},
	}
}
