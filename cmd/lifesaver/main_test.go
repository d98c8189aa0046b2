package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/lifesaver/internal/config"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func effectiveConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	out, err := execute(t, append([]string{"config"}, args...)...)
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not yaml: %v\n%s", err, out)
	}
	return &cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := effectiveConfig(t)
	if *cfg != *config.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("boundary: clamped\nfill: \"#00ff00\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		boundary string
		fill     string
		backend  string
	}{
		{"preset", []string{"--preset", "rapid"}, "toroidal", "#ffffff", config.BackendTcell},
		{"file", []string{"--config", path}, "clamped", "#00ff00", config.BackendBubbleTea},
		{"flag over file", []string{"--config", path, "--boundary", "torus"}, "torus", "#00ff00", config.BackendBubbleTea},
		{"flag over preset", []string{"--preset", "rapid", "--backend", "bubbletea"}, "toroidal", "#ffffff", config.BackendBubbleTea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := effectiveConfig(t, tt.args...)
			if cfg.Boundary != tt.boundary || cfg.Fill != tt.fill || cfg.Backend != tt.backend {
				t.Errorf("got boundary=%s fill=%s backend=%s", cfg.Boundary, cfg.Fill, cfg.Backend)
			}
		})
	}
}

func TestConfigPresetThenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fill.yaml")
	if err := os.WriteFile(path, []byte("fill: \"#00ff00\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := effectiveConfig(t, "--preset", "rapid", "--config", path)

	if cfg.Fill != "#00ff00" {
		t.Errorf("file fill not applied, got %s", cfg.Fill)
	}
	if cfg.Backend != config.BackendTcell || cfg.Interval != 100*time.Millisecond || cfg.Trace.Generations != 1000 {
		t.Errorf("preset values lost: backend=%s interval=%s gens=%d", cfg.Backend, cfg.Interval, cfg.Trace.Generations)
	}
}

func TestCloseInto(t *testing.T) {
	errClose := errors.New("disk full")
	errRun := errors.New("terminal gone")

	tests := []struct {
		name  string
		prior error
		close error
		want  error
	}{
		{"clean", nil, nil, nil},
		{"close fails", nil, errClose, errClose},
		{"run error wins", errRun, errClose, errRun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prior
			closeInto(&err, func() error { return tt.close }, "close log")
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestConfigWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	if _, err := execute(t, "config", "--preset", "calm", "--write", path); err != nil {
		t.Fatalf("config --write failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Fill != "#5f87af" {
		t.Errorf("expected calm fill, got %s", cfg.Fill)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	if _, err := execute(t, "config", "--boundary", "mirror"); err == nil {
		t.Error("expected error for unknown boundary")
	}
	if _, err := execute(t, "config", "--preset", "nope"); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("preset %s missing from output", name)
		}
	}
}

func TestTraceCommand(t *testing.T) {
	out, err := execute(t, "trace", "--height", "6", "--width", "6", "--generations", "5", "--seed", "9", "--dump", "--stop-at-fixed-point=false")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	for _, want := range []string{"population", "generations", "density", "activity"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "generations  5") {
		t.Errorf("expected 5 generations in summary:\n%s", out)
	}
}
