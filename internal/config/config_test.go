package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendardate.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
location: Europe/Moscow
output: json
log:
  level: debug
  file: /tmp/calendardate.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Location != "Europe/Moscow" {
		t.Errorf("Location = %q, want Europe/Moscow", cfg.Location)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/calendardate.log" {
		t.Errorf("Log = %+v, want debug level and file", cfg.Log)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Location != "Local" || cfg.Output != OutputText || cfg.Log.Level != "info" || cfg.Log.File != "" {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CALENDARDATE_OUTPUT", "yaml")
	t.Setenv("CALENDARDATE_LOG_LEVEL", "warn")

	path := writeConfig(t, "output: json\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != OutputYAML {
		t.Errorf("Output = %q, want yaml from env", cfg.Output)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn from env", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"Missing explicit file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") }},
		{"Unknown output", func(t *testing.T) string { return writeConfig(t, "output: xml\n") }},
		{"Unknown location", func(t *testing.T) string { return writeConfig(t, "location: Mars/Olympus\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path(t)); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestGetLocation(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"", "Local"},
		{"Local", "Local"},
		{"UTC", "UTC"},
	}

	for _, tt := range tests {
		cfg := Config{Location: tt.location}
		loc, err := cfg.GetLocation()
		if err != nil {
			t.Fatalf("GetLocation(%q) error = %v", tt.location, err)
		}
		if loc.String() != tt.want {
			t.Errorf("GetLocation(%q) = %v, want %v", tt.location, loc, tt.want)
		}
	}

	if loc, _ := (&Config{}).GetLocation(); loc != time.Local {
		t.Errorf("GetLocation() = %v, want time.Local", loc)
	}
}
