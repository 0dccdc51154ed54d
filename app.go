package debman

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/outofforest/logger"
	"go.uber.org/zap"

	"github.com/debman/debman/config"
	"github.com/debman/debman/infra/artifacts"
	"github.com/debman/debman/infra/meta"
	"github.com/debman/debman/infra/toolchain"
	"github.com/debman/debman/infra/types"
)

// Build builds a binary Debian package from the project and optionally
// installs it.
func Build(
	ctx context.Context,
	build config.Build,
	reader *meta.Reader,
	dist *artifacts.Directory,
	tc toolchain.Toolchain,
) (types.BuildInfo, error) {
	project, err := reader.Project(ctx)
	if err != nil {
		return types.BuildInfo{}, err
	}

	info := types.BuildInfo{
		BuildID:   uuid.NewString(),
		Name:      project.Name,
		Version:   project.Version,
		ReleaseID: project.ReleaseID,
		DistDir:   dist.Path(),
		CreatedAt: time.Now(),
	}

	log := logger.Get(ctx)
	log.Info("Packaging release", zap.String("buildID", info.BuildID),
		zap.String("release", project.ReleaseID))

	if err := dist.Clean(); err != nil {
		return types.BuildInfo{}, err
	}
	if err := tc.BuildPackage(ctx); err != nil {
		return types.BuildInfo{}, err
	}

	if build.Install {
		artifact, err := dist.FirstBinary()
		if err != nil {
			return types.BuildInfo{}, err
		}
		if err := tc.InstallArtifact(ctx, artifact); err != nil {
			return types.BuildInfo{}, err
		}
		if err := tc.RepairDependencies(ctx); err != nil {
			return types.BuildInfo{}, err
		}
		info.Installed = true
		log.Info("Artifact installed", zap.String("artifact", artifact))
	}

	return info, nil
}

// Install installs an already built artifact and repairs its dependencies.
func Install(
	ctx context.Context,
	install config.Install,
	dist *artifacts.Directory,
	tc toolchain.Toolchain,
) (string, error) {
	artifact := install.Artifact
	if artifact == "" {
		var err error
		artifact, err = dist.FirstBinary()
		if err != nil {
			return "", err
		}
	}

	logger.Get(ctx).Info("Installing artifact", zap.String("artifact", artifact))

	if err := tc.InstallArtifact(ctx, artifact); err != nil {
		return "", err
	}
	if err := tc.RepairDependencies(ctx); err != nil {
		return "", err
	}
	return artifact, nil
}

// List returns information about artifacts present in the dist directory.
func List(ctx context.Context, dist *artifacts.Directory) ([]types.Artifact, error) {
	return dist.List(ctx)
}

// Clean removes the dist directory.
func Clean(ctx context.Context, dist *artifacts.Directory) error {
	logger.Get(ctx).Info("Removing dist directory", zap.String("dir", dist.Path()))
	return dist.Clean()
}

// Version returns project metadata together with the derived release identifier.
func Version(ctx context.Context, reader *meta.Reader) (types.Project, error) {
	return reader.Project(ctx)
}
