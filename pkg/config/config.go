// Package config loads named window presets from TOML files.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/karvel/fenestra/pkg/window"
)

// Preset is a named set of window parameters, as stored on disk.
// Zero fields fall back to the built-in defaults, so a preset only
// needs to state what it changes.
type Preset struct {
	OpeningWidth     float64 `toml:"opening_width"`
	OpeningHeight    float64 `toml:"opening_height"`
	OpeningThickness float64 `toml:"opening_thickness"`
	FrameWidth       float64 `toml:"frame_width"`
	FrameThickness   float64 `toml:"frame_thickness"`
	GlassThickness   float64 `toml:"glass_thickness"`
	Panes            int     `toml:"panes"`
}

// File is the on-disk layout of a preset file:
//
//	[presets.casement]
//	opening_width = 900
//	panes = 1
type File struct {
	Presets map[string]Preset `toml:"presets"`
}

// Load reads and parses a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// Params resolves a named preset into complete window parameters,
// filling unset fields from the defaults.
func (f *File) Params(name string) (window.Params, error) {
	pre, ok := f.Presets[name]
	if !ok {
		return window.Params{}, fmt.Errorf("config: no preset %q", name)
	}
	p := window.DefaultParams()
	if pre.OpeningWidth != 0 {
		p.OpeningWidth = pre.OpeningWidth
	}
	if pre.OpeningHeight != 0 {
		p.OpeningHeight = pre.OpeningHeight
	}
	if pre.OpeningThickness != 0 {
		p.OpeningThickness = pre.OpeningThickness
	}
	if pre.FrameWidth != 0 {
		p.FrameWidth = pre.FrameWidth
	}
	if pre.FrameThickness != 0 {
		p.FrameThickness = pre.FrameThickness
	}
	if pre.GlassThickness != 0 {
		p.GlassThickness = pre.GlassThickness
	}
	if pre.Panes != 0 {
		p.Panes = pre.Panes
	}
	return p, nil
}

// Names lists the preset names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
