package meta

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/debman/debman/config"
	"github.com/debman/debman/infra/toolchain"
	"github.com/debman/debman/infra/types"
)

const (
	pyprojectFile = "pyproject.toml"
	setupFile     = "setup.py"
)

// NewReader returns reader of project release metadata.
func NewReader(config config.Metadata, toolchain toolchain.Toolchain) *Reader {
	return &Reader{
		config:    config,
		toolchain: toolchain,
	}
}

// Reader reads project name and version from the project metadata source.
// pyproject.toml is preferred, setup.py is queried when pyproject.toml is
// missing or declares its version dynamically.
type Reader struct {
	config    config.Metadata
	toolchain toolchain.Toolchain
}

// Project returns project metadata with the derived release identifier.
func (r *Reader) Project(ctx context.Context) (types.Project, error) {
	project, ok, err := r.fromPyproject()
	if err != nil {
		return types.Project{}, err
	}
	if !ok {
		project, err = r.fromSetupPy(ctx)
		if err != nil {
			return types.Project{}, err
		}
	}
	project.ReleaseID = ReleaseID(project.Name, project.Version)
	return project, nil
}

type pyproject struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
}

func (r *Reader) fromPyproject() (types.Project, bool, error) {
	raw, err := os.ReadFile(filepath.Join(r.config.ProjectDir, pyprojectFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return types.Project{}, false, nil
	case err != nil:
		return types.Project{}, false, errors.WithStack(err)
	}

	var p pyproject
	if err := toml.Unmarshal(raw, &p); err != nil {
		return types.Project{}, false, errors.Wrapf(err, "parsing %s failed", pyprojectFile)
	}
	if p.Project.Name == "" || p.Project.Version == "" {
		// dynamic metadata, only setup.py can answer
		return types.Project{}, false, nil
	}
	return types.Project{Name: p.Project.Name, Version: p.Project.Version}, true, nil
}

func (r *Reader) fromSetupPy(ctx context.Context) (types.Project, error) {
	if _, err := os.Stat(filepath.Join(r.config.ProjectDir, setupFile)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.Project{}, errors.Errorf("no project metadata source found in %s", r.config.ProjectDir)
		}
		return types.Project{}, errors.WithStack(err)
	}

	name, err := r.toolchain.ProjectField(ctx, "--name")
	if err != nil {
		return types.Project{}, err
	}
	version, err := r.toolchain.ProjectField(ctx, "--version")
	if err != nil {
		return types.Project{}, err
	}
	return types.Project{Name: name, Version: version}, nil
}
