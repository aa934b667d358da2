package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fplgenius.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	c, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"), env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Port != 3000 {
		t.Errorf("expected: '3000', got: '%d'", c.Port)
	}
	if c.Revalidate.Players != time.Minute {
		t.Errorf("expected: '1m0s', got: '%v'", c.Revalidate.Players)
	}
	if c.Revalidate.Fixtures != 5*time.Minute {
		t.Errorf("expected: '5m0s', got: '%v'", c.Revalidate.Fixtures)
	}
	loc, err := c.Location()
	if err != nil || loc.String() != "Europe/London" {
		t.Errorf("expected: 'Europe/London', got: '%v' (err: %v)", loc, err)
	}
}

func TestFileAndEnvOverrides(t *testing.T) {
	path := writeFile(t, `
port: 8080
fpl_timeout: 5s
display_timezone: UTC
revalidate:
  players: 2m
  gameweeks: 30s
`)

	c, err := LoadFrom(path, env(map[string]string{
		"PORT":             "9090",
		"REFRESH_INTERVAL": "1m",
		"LOG_LEVEL":        "debug",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		got  any
		want any
	}{
		"env beats file":      {got: c.Port, want: 9090},
		"file beats default":  {got: c.FPLTimeout, want: 5 * time.Second},
		"env beats default":   {got: c.RefreshInterval, want: time.Minute},
		"log level":           {got: c.LogLevel, want: "debug"},
		"revalidate players":  {got: c.Revalidate.Players, want: 2 * time.Minute},
		"revalidate gameweek": {got: c.Revalidate.Gameweeks, want: 30 * time.Second},
		"revalidate teams":    {got: c.Revalidate.Teams, want: time.Minute},
		"timezone":            {got: c.DisplayTimezone, want: "UTC"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("expected: '%v', got: '%v'", tc.want, tc.got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		file string
		env  map[string]string
	}{
		"bad port":     {env: map[string]string{"PORT": "http"}},
		"port range":   {env: map[string]string{"PORT": "70000"}},
		"bad duration": {env: map[string]string{"FPL_TIMEOUT": "soon"}},
		"bad timezone": {env: map[string]string{"DISPLAY_TIMEZONE": "Mars/Olympus"}},
		"bad yaml":     {file: "port: [1, 2"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			path := ""
			if tc.file != "" {
				path = writeFile(t, tc.file)
			}
			if _, err := LoadFrom(path, env(tc.env)); err == nil {
				t.Errorf("expected an error, got nil")
			}
		})
	}
}
