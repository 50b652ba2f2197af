// Package config loads optional scan-limit overrides from a YAML file.
// The compiled-in target list is deliberately not configurable here;
// changing the audit list is a source edit.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jward/packscan"
)

// fileSchema mirrors the YAML layout:
//
//	limits:
//	  max_manifests: 50
//	  manifests_per_target: 10
//	  source_files_per_ext: 100
//	  file_timeout: 5s
//	  max_file_size: 4194304
type fileSchema struct {
	Limits limitsSchema `yaml:"limits"`
}

type limitsSchema struct {
	MaxManifests       int    `yaml:"max_manifests"`
	ManifestsPerTarget int    `yaml:"manifests_per_target"`
	SourceFilesPerExt  int    `yaml:"source_files_per_ext"`
	FileTimeout        string `yaml:"file_timeout"`
	MaxFileSize        int64  `yaml:"max_file_size"`
}

// LoadLimits reads path and returns scan limits with any omitted field at
// its default. An empty path returns the defaults outright.
func LoadLimits(path string) (packscan.ScanLimits, error) {
	limits := packscan.DefaultLimits()
	if path == "" {
		return limits, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return limits, fmt.Errorf("reading config: %w", err)
	}
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return limits, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if schema.Limits.MaxManifests > 0 {
		limits.MaxManifests = schema.Limits.MaxManifests
	}
	if schema.Limits.ManifestsPerTarget > 0 {
		limits.ManifestsPerTarget = schema.Limits.ManifestsPerTarget
	}
	if schema.Limits.SourceFilesPerExt > 0 {
		limits.SourceFilesPerExt = schema.Limits.SourceFilesPerExt
	}
	if schema.Limits.FileTimeout != "" {
		d, err := time.ParseDuration(schema.Limits.FileTimeout)
		if err != nil {
			return limits, fmt.Errorf("parsing config %s: file_timeout: %w", path, err)
		}
		limits.FileTimeout = d
	}
	if schema.Limits.MaxFileSize > 0 {
		limits.MaxFileSize = schema.Limits.MaxFileSize
	}
	return limits, nil
}
