package model

import (
	"strings"

	"github.com/google/uuid"
)

// PagePreset is a named page size, e.g. a GPU texture limit or a print sheet.
type PagePreset struct {
	ID     string `json:"id" toml:"-"`
	Name   string `json:"name" toml:"name"`
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
}

// NewPagePreset creates a new PagePreset with a generated ID.
func NewPagePreset(name string, width, height int) PagePreset {
	return PagePreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// ApplyToSettings sets the page size of s to the preset's size.
func (p PagePreset) ApplyToSettings(s *PackSettings) {
	s.PageWidth = p.Width
	s.PageHeight = p.Height
}

// DefaultPagePresets returns the built-in presets: square power-of-two
// texture sizes and the common paper sizes at 300 dpi.
func DefaultPagePresets() []PagePreset {
	return []PagePreset{
		NewPagePreset("tex-256", 256, 256),
		NewPagePreset("tex-512", 512, 512),
		NewPagePreset("tex-1k", 1024, 1024),
		NewPagePreset("tex-2k", 2048, 2048),
		NewPagePreset("tex-4k", 4096, 4096),
		NewPagePreset("tex-8k", 8192, 8192),
		NewPagePreset("a4-300dpi", 2480, 3508),
		NewPagePreset("letter-300dpi", 2550, 3300),
	}
}

// PresetCatalog is a list of presets searched by name. Later entries
// shadow earlier ones with the same name, so user presets can override
// the built-in ones.
type PresetCatalog struct {
	Presets []PagePreset `json:"presets"`
}

// NewPresetCatalog returns the built-in presets followed by extra.
func NewPresetCatalog(extra []PagePreset) PresetCatalog {
	return PresetCatalog{Presets: append(DefaultPagePresets(), extra...)}
}

// FindByName returns the last preset whose name matches case-insensitively, or nil.
func (c *PresetCatalog) FindByName(name string) *PagePreset {
	for i := len(c.Presets) - 1; i >= 0; i-- {
		if strings.EqualFold(c.Presets[i].Name, name) {
			return &c.Presets[i]
		}
	}
	return nil
}

// Names returns the distinct preset names in catalog order.
func (c *PresetCatalog) Names() []string {
	seen := make(map[string]bool, len(c.Presets))
	var names []string
	for _, p := range c.Presets {
		key := strings.ToLower(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, p.Name)
	}
	return names
}
