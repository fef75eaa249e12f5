package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects and to CLI runs without flags
	DefaultPageWidth  int       `json:"default_page_width" toml:"default_page_width"`
	DefaultPageHeight int       `json:"default_page_height" toml:"default_page_height"`
	DefaultHeuristic  Heuristic `json:"default_heuristic" toml:"default_heuristic"`
	DefaultMaxPages   int       `json:"default_max_pages" toml:"default_max_pages"`
	MinOffcutSide     int       `json:"min_offcut_side" toml:"min_offcut_side"`
	WastePercent      float64   `json:"waste_percent" toml:"waste_percent"`

	// Named page sizes added to the built-in presets
	PagePresets []PagePreset `json:"page_presets,omitempty" toml:"page_presets,omitempty"`

	RecentProjects []string `json:"recent_projects" toml:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultPageWidth:  defaults.PageWidth,
		DefaultPageHeight: defaults.PageHeight,
		DefaultHeuristic:  defaults.Heuristic,
		DefaultMaxPages:   defaults.MaxPages,
		MinOffcutSide:     32,
		WastePercent:      15,
		RecentProjects:    []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings struct.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.PageWidth = c.DefaultPageWidth
	s.PageHeight = c.DefaultPageHeight
	s.Heuristic = c.DefaultHeuristic
	s.MaxPages = c.DefaultMaxPages
}

// AddRecentProject moves path to the front of the recent list, keeping at most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
