package config

// NewInstall returns new install config
func NewInstall(args Args) Install {
	config := Install{}
	if len(args) > 0 {
		config.Artifact = args[0]
	}
	return config
}

// Install stores configuration for install command
type Install struct {
	// Artifact is the explicit artifact path to install, if empty the first
	// binary package from the dist directory is used
	Artifact string
}
