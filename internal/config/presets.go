package config

import (
	"fmt"
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Boundary: "toroidal", Interval: 500 * time.Millisecond, Backend: BackendBubbleTea, Fill: "#ffffff",
		Trace: TraceConfig{Height: DefaultHeight, Width: DefaultWidth, Generations: DefaultGenerations},
	},
	"clamped": {
		Boundary: "clamped", Interval: 500 * time.Millisecond, Backend: BackendBubbleTea, Fill: "#ffffff",
		Trace: TraceConfig{Height: DefaultHeight, Width: DefaultWidth, Generations: DefaultGenerations},
	},
	"calm": {
		Boundary: "toroidal", Interval: time.Second, Backend: BackendBubbleTea, Fill: "#5f87af",
		Trace: TraceConfig{Height: DefaultHeight, Width: DefaultWidth, Generations: DefaultGenerations},
	},
	"rapid": {
		Boundary: "toroidal", Interval: 100 * time.Millisecond, Backend: BackendTcell, Fill: "#ffffff",
		Trace: TraceConfig{Height: DefaultHeight, Width: DefaultWidth, Generations: 1000},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// LookupPreset is GetPreset with an error for unknown names.
func LookupPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
