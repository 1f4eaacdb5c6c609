package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyOrigin = "renderer_origin"
	KeyShowQR = "show_qr_code"
)

// Default values
const (
	DefaultOrigin = "http://localhost:8080"
	DefaultShowQR = true
)

// Settings manages user settings. Rendering parameters are deliberately
// not stored here; every session starts from the catalog defaults.
type Settings struct {
	app      fyne.App
	defaults *Config
}

// NewSettings creates a new settings manager seeded from the startup config.
// A nil config uses DefaultConfig.
func NewSettings(app fyne.App, defaults *Config) *Settings {
	if defaults == nil {
		defaults = DefaultConfig()
	}
	return &Settings{app: app, defaults: defaults}
}

// GetOrigin returns the configured renderer origin
func (s *Settings) GetOrigin() string {
	origin := s.app.Preferences().String(KeyOrigin)
	if origin == "" {
		origin = s.defaults.Origin
		if origin == "" {
			origin = DefaultOrigin
		}
		return origin
	}
	return origin
}

// SetOrigin sets the renderer origin. Invalid origins are rejected.
func (s *Settings) SetOrigin(origin string) error {
	origin = NormalizeOrigin(origin)
	if err := ValidateOrigin(origin); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyOrigin, origin)
	return nil
}

// ResetOrigin drops the stored origin so the startup config applies again
func (s *Settings) ResetOrigin() {
	s.app.Preferences().RemoveValue(KeyOrigin)
}

// GetShowQR returns whether the QR code is shown next to the URL
func (s *Settings) GetShowQR() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowQR, DefaultShowQR)
}

// SetShowQR sets whether the QR code is shown next to the URL
func (s *Settings) SetShowQR(show bool) {
	s.app.Preferences().SetBool(KeyShowQR, show)
}

// Defaults returns the startup configuration backing unset settings
func (s *Settings) Defaults() *Config {
	return s.defaults
}
