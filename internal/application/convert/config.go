package convert

import (
	"path/filepath"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
)

// Config drives one conversion batch
type Config struct {
	ExportDir string // directory holding the summary CSVs and jsons/
	OutputDir string // defaults to <ExportDir>/tcx_files
	Timezone  string // zone for trackpoint times, "Local" by default
	Workers   int    // rows converted in parallel, 1 = sequential
}

func (c *Config) normalize() {
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.ExportDir, constants.OutputDir)
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
}
