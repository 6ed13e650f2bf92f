package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/strata/internal/model"
)

// Job is a persisted slicing job: exactly the three parameters the
// slicer takes from the outside world. Temperatures and feed rates are
// part of the fixed machine profile and deliberately have no place here.
type Job struct {
	// Input is the STL mesh path. Relative paths resolve against the
	// job file's directory.
	Input string `yaml:"input" json:"input"`

	// Output is the G-code destination path, resolved the same way.
	Output string `yaml:"output" json:"output"`

	// LayerHeight is the slice spacing in mesh units. Must be > 0.
	LayerHeight float64 `yaml:"layerHeight" json:"layerHeight"`
}

// Load reads and validates a job file. The format is chosen by
// extension: .yaml/.yml parse as YAML, .json/.jsonc parse as JSON with
// comment stripping. Read failures are *model.IoError; a bad layer
// height is *model.InvalidParameterError.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.IoError{Op: "read", Path: path, Err: err}
	}

	var job Job
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &job); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported job file extension %q (want .yaml, .yml, .json, or .jsonc)", filepath.Ext(path))
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	job.resolvePaths(filepath.Dir(path))
	return &job, nil
}

// Validate checks that the job is complete and its parameters are in
// range.
func (j *Job) Validate() error {
	if j.Input == "" {
		return fmt.Errorf("job is missing the input mesh path")
	}
	if j.Output == "" {
		return fmt.Errorf("job is missing the output path")
	}
	if j.LayerHeight <= 0 {
		return &model.InvalidParameterError{
			Name:       "layerHeight",
			Value:      j.LayerHeight,
			Constraint: "must be > 0",
		}
	}
	return nil
}

// resolvePaths rebases relative input/output paths onto dir, so a job
// file can be invoked from any working directory.
func (j *Job) resolvePaths(dir string) {
	if !filepath.IsAbs(j.Input) {
		j.Input = filepath.Join(dir, j.Input)
	}
	if !filepath.IsAbs(j.Output) {
		j.Output = filepath.Join(dir, j.Output)
	}
}
