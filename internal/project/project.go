// Package project provides inspection project file handling and persistence.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// File represents an inspection planning project file (.utproj). It records
// where the request lives relative to the project and where the generated
// artifacts were written, so a plan can be re-run and compared later.
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Standard    string    `json:"standard"`
	Description string    `json:"description,omitempty"`

	// Request path (relative to project file)
	RequestPath string `json:"request,omitempty"`

	// Generated artifact paths (relative to project file)
	PlanPath    string `json:"plan,omitempty"`
	DrawingPath string `json:"drawing,omitempty"`

	// User settings
	Settings ProjectSettings `json:"settings,omitempty"`
}

// ProjectSettings holds user preferences for the project.
type ProjectSettings struct {
	DefaultFrequency float64 `json:"default_frequency,omitempty"`
	PreferredVendor  string  `json:"preferred_vendor,omitempty"`
}

// New creates a new project file with default settings.
func New(name, standard string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
		Standard: standard,
		Settings: ProjectSettings{
			DefaultFrequency: 5.0,
		},
	}
}

// Load loads a project from a .utproj file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, err
	}

	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetRequest sets the request path (relative to project).
func (p *File) SetRequest(projectPath, requestPath string) {
	p.RequestPath = relTo(projectPath, requestPath)
	p.Modified = time.Now()
}

// SetPlan sets the generated plan path (relative to project).
func (p *File) SetPlan(projectPath, planPath string) {
	p.PlanPath = relTo(projectPath, planPath)
	p.Modified = time.Now()
}

// SetDrawing sets the block drawing spec path (relative to project).
func (p *File) SetDrawing(projectPath, drawingPath string) {
	p.DrawingPath = relTo(projectPath, drawingPath)
	p.Modified = time.Now()
}

// GetRequestPath returns the absolute path to the request file.
func (p *File) GetRequestPath(projectPath string) string {
	return absFrom(projectPath, p.RequestPath)
}

// GetPlanPath returns the absolute path to the plan file. Defaults to
// project_name_plan.json next to the project when unset.
func (p *File) GetPlanPath(projectPath string) string {
	if p.PlanPath == "" {
		base := projectPath[:len(projectPath)-len(filepath.Ext(projectPath))]
		return base + "_plan.json"
	}
	return absFrom(projectPath, p.PlanPath)
}

// GetDrawingPath returns the absolute path to the drawing spec file.
func (p *File) GetDrawingPath(projectPath string) string {
	if p.DrawingPath == "" {
		base := projectPath[:len(projectPath)-len(filepath.Ext(projectPath))]
		return base + "_block.json"
	}
	return absFrom(projectPath, p.DrawingPath)
}

func relTo(projectPath, target string) string {
	rel, err := filepath.Rel(filepath.Dir(projectPath), target)
	if err != nil {
		return target
	}
	return rel
}

func absFrom(projectPath, stored string) string {
	if stored == "" {
		return ""
	}
	if filepath.IsAbs(stored) {
		return stored
	}
	return filepath.Join(filepath.Dir(projectPath), stored)
}
