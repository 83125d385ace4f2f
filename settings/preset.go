package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a partial settings record for one physical machine. Only the
// fields a preset sets take effect; nil fields keep their baseline value.
type Preset struct {
	Framerate     *int    `yaml:"framerate,omitempty"`
	ScreenSize    *[2]int `yaml:"screen_size,omitempty"`
	ScreenN       *int    `yaml:"screen_n,omitempty"`
	Fullscreen    *bool   `yaml:"fullscreen,omitempty"`
	UseEyetracker *bool   `yaml:"use_eyetracker,omitempty"`
}

// apply overlays the preset's set fields onto s, recording each overridden
// field in sources.
func (p Preset) apply(s *Settings, sources map[string]Source) {
	if p.Framerate != nil {
		s.Window.Framerate = *p.Framerate
		sources["framerate"] = SourcePreset
	}
	if p.ScreenSize != nil {
		s.Window.ScreenSize = *p.ScreenSize
		sources["screen_size"] = SourcePreset
	}
	if p.ScreenN != nil {
		s.Window.ScreenN = *p.ScreenN
		sources["screen_n"] = SourcePreset
	}
	if p.Fullscreen != nil {
		s.Testing.Fullscreen = *p.Fullscreen
		sources["fullscreen"] = SourcePreset
	}
	if p.UseEyetracker != nil {
		s.Testing.UseEyetracker = *p.UseEyetracker
		sources["use_eyetracker"] = SourcePreset
	}
}

// Registry maps a machine identity to its device preset. Keys are unique;
// lookup is a single exact match.
type Registry map[string]Preset

// Builtin returns the presets for known lab machines. Add your own under the
// name reported by DetectMachineID, or ship them in a presets file.
func Builtin() Registry {
	return Registry{
		"IT099733": {
			ScreenN: Int(1),
		},
		"UNKNOWN": {
			Framerate: Int(120),
		},
		"IT160705": {
			Framerate:  Int(60),
			ScreenSize: Size(1920, 1200),
		},
	}
}

// LoadRegistry reads an authored presets file keyed by machine name.
// A missing file is not an error: an empty registry is returned.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Registry{}, nil
		}
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if reg == nil {
		reg = Registry{}
	}
	return reg, nil
}

// Merge returns a new registry with overlay's entries shadowing r's entries
// of the same machine identity. Neither input is modified.
func (r Registry) Merge(overlay Registry) Registry {
	merged := make(Registry, len(r)+len(overlay))
	for id, p := range r {
		merged[id] = p
	}
	for id, p := range overlay {
		merged[id] = p
	}
	return merged
}

// Int returns a pointer to v, for authoring presets in code.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for authoring presets in code.
func Bool(v bool) *bool { return &v }

// Size returns a pointer to a [width, height] pair, for authoring presets
// in code.
func Size(w, h int) *[2]int { return &[2]int{w, h} }
