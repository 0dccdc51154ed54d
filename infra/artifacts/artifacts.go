package artifacts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/outofforest/parallel"
	"github.com/pkg/errors"

	"github.com/debman/debman/config"
	"github.com/debman/debman/infra/types"
)

const (
	// binaryPattern matches architecture-independent binary packages produced
	// by bdist_deb, the install step targets the first match.
	binaryPattern = "*_all.deb"

	artifactPattern = "*.deb"
)

// NewDirectory returns accessor of the dist directory.
func NewDirectory(config config.Metadata) *Directory {
	return &Directory{path: config.DistPath()}
}

// Directory gives access to artifacts deposited in the dist directory by the
// external build tool.
type Directory struct {
	path string
}

// Path returns the dist directory path.
func (d *Directory) Path() string {
	return d.path
}

// Clean removes the dist directory recursively, absence is not an error.
func (d *Directory) Clean() error {
	return errors.WithStack(os.RemoveAll(d.path))
}

// FirstBinary returns the path of the first binary package, in lexicographic
// order, present in the dist directory.
func (d *Directory) FirstBinary() (string, error) {
	matches, err := filepath.Glob(filepath.Join(d.path, binaryPattern))
	if err != nil {
		return "", errors.WithStack(err)
	}
	if len(matches) == 0 {
		return "", errors.Wrapf(types.ErrNoArtifact, "no %s in %s", binaryPattern, d.path)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// List returns all .deb artifacts in the dist directory sorted by filename,
// with checksums computed concurrently.
func (d *Directory) List(ctx context.Context) ([]types.Artifact, error) {
	matches, err := filepath.Glob(filepath.Join(d.path, artifactPattern))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sort.Strings(matches)

	artifacts := make([]types.Artifact, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		pkg, version, arch := parseFileName(filepath.Base(match))
		artifacts = append(artifacts, types.Artifact{
			Package:      pkg,
			Version:      version,
			Architecture: arch,
			File:         filepath.Base(match),
			Size:         info.Size(),
			ModifiedAt:   info.ModTime(),
		})
	}

	err = parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := range artifacts {
			i := i
			spawn("checksum-"+artifacts[i].File, parallel.Continue, func(ctx context.Context) error {
				sum, err := checksum(filepath.Join(d.path, artifacts[i].File))
				if err != nil {
					return err
				}
				artifacts[i].SHA256 = sum
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// parseFileName splits "name_version_arch.deb" into its components. Artifacts
// with unexpected names are still listed, just without parsed fields.
func parseFileName(file string) (pkg, version, arch string) {
	parts := strings.Split(strings.TrimSuffix(file, ".deb"), "_")
	if len(parts) != 3 {
		return "", "", ""
	}
	return parts[0], parts[1], parts[2]
}

func checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.WithStack(err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
