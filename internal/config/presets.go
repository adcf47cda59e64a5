package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/vortexcurl/internal/vortex"
)

type preset struct {
	position vortex.Position
	playing  bool
}

var presets = map[string]preset{
	"core":   {position: vortex.Center, playing: true},
	"edge":   {position: vortex.InnerEdge, playing: true},
	"outer":  {position: vortex.OuterFlow, playing: true},
	"frozen": {position: vortex.OuterFlow, playing: false},
}

// GetPreset returns a fresh default config with the named preset applied.
func GetPreset(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	cfg.Position = p.position
	cfg.Playing = p.playing
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
