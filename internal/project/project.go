package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/atlaspack/internal/model"
)

// ProjectExt is the file extension used for saved projects.
const ProjectExt = ".atlas.json"

// SaveProject writes a project to path as indented JSON, creating parent
// directories as needed.
func SaveProject(path string, p model.Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project saved by SaveProject. Settings missing from
// the file fall back to model.DefaultSettings.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	p := model.Project{Settings: model.DefaultSettings()}
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Items == nil {
		p.Items = []model.Item{}
	}
	return p, nil
}
