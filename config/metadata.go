package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither flags nor the project file specify a value.
const (
	DefaultPython  = "python3"
	DefaultDistDir = "deb_dist"
)

// ProjectFileName is the name of the optional per-project defaults file.
const ProjectFileName = ".debman.yaml"

// MetadataFactory collects data for metadata config
type MetadataFactory struct {
	// ProjectDir is the directory containing the packaged project
	ProjectDir string

	// Python is the python interpreter used to run the packaging toolchain
	Python string

	// DistDir is the directory, relative to ProjectDir, where artifacts are deposited
	DistDir string
}

type projectFile struct {
	Python  string `yaml:"python"`
	DistDir string `yaml:"distDir"`
}

// Config returns new metadata config. Values left at their flag defaults may be
// overridden by the project's .debman.yaml file.
func (f *MetadataFactory) Config() Metadata {
	config := Metadata{
		ProjectDir: f.ProjectDir,
		Python:     f.Python,
		DistDir:    f.DistDir,
	}

	var file projectFile
	raw, err := os.ReadFile(filepath.Join(f.ProjectDir, ProjectFileName))
	if err == nil && yaml.Unmarshal(raw, &file) == nil {
		if config.Python == DefaultPython && file.Python != "" {
			config.Python = file.Python
		}
		if config.DistDir == DefaultDistDir && file.DistDir != "" {
			config.DistDir = file.DistDir
		}
	}
	return config
}

// Metadata stores configuration of the project metadata source and toolchain layout
type Metadata struct {
	// ProjectDir is the directory containing the packaged project
	ProjectDir string

	// Python is the python interpreter used to run the packaging toolchain
	Python string

	// DistDir is the directory, relative to ProjectDir, where artifacts are deposited
	DistDir string
}

// DistPath returns the absolute-ish path of the dist directory.
func (m Metadata) DistPath() string {
	return filepath.Join(m.ProjectDir, m.DistDir)
}
