package config

// BuildFactory collects data for build config
type BuildFactory struct {
	// Install installs the produced artifact after packaging
	Install bool
}

// Config returns new build config
func (f *BuildFactory) Config() Build {
	return Build{
		Install: f.Install,
	}
}

// Build stores configuration for build command
type Build struct {
	// Install installs the produced artifact after packaging
	Install bool
}
