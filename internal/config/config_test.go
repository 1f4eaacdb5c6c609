package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Origin != DefaultOrigin {
		t.Errorf("Expected origin %s, got %s", DefaultOrigin, cfg.Origin)
	}
	if cfg.Preview.Timeout != 15*time.Second {
		t.Errorf("Expected 15s preview timeout, got %v", cfg.Preview.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallpanel.yml")
	content := `origin: https://wall.example.com/
log:
  level: debug
  format: json
preview:
  timeout: 5s
  max_dimension: 480
qr:
  size: 320
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("WALLPANEL_QR__SIZE", "512")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Origin != "https://wall.example.com" {
		t.Errorf("Expected normalized origin, got %s", cfg.Origin)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config %+v", cfg.Log)
	}
	if cfg.Preview.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Preview.Timeout)
	}
	if cfg.Preview.MaxDimension != 480 {
		t.Errorf("Expected max dimension 480, got %d", cfg.Preview.MaxDimension)
	}
	if cfg.QR.Size != 512 {
		t.Errorf("Expected env override qr size 512, got %d", cfg.QR.Size)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(path, []byte("origin: [unclosed"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")
	cfg := DefaultConfig()
	cfg.Origin = "http://10.0.0.2:8080"
	cfg.QR.Size = 128

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Origin != cfg.Origin || loaded.QR.Size != 128 {
		t.Errorf("Reloaded config mismatch: %+v", loaded)
	}
}

func TestValidateOrigin(t *testing.T) {
	tests := []struct {
		origin string
		valid  bool
	}{
		{"http://localhost:8080", true},
		{"https://wall.example.com", true},
		{"https://wall.example.com/", true},
		{"", false},
		{"localhost:8080", false},
		{"ftp://wall.example.com", false},
		{"http://", false},
		{"http://wall.example.com/wallpaper", false},
		{"http://wall.example.com?x=1", false},
	}

	for _, test := range tests {
		err := ValidateOrigin(test.origin)
		if (err == nil) != test.valid {
			t.Errorf("ValidateOrigin(%q) error = %v, expected valid=%v", test.origin, err, test.valid)
		}
	}
}

func TestValidate_Negative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preview.MaxDimension = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for negative max dimension")
	}
}
