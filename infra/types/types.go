package types

import (
	"time"

	"github.com/pkg/errors"
)

// ErrNoArtifact is returned when install is requested but the dist directory
// contains no binary package.
var ErrNoArtifact = errors.New("no binary package artifact found")

// Project describes the packaged project as read from its metadata source.
type Project struct {
	// Name is the distribution name of the project.
	Name string

	// Version is the raw version string from project metadata.
	Version string

	// ReleaseID is the Debian-compatible release identifier derived from Name and Version.
	ReleaseID string
}

// Artifact describes a single .deb file present in the dist directory.
type Artifact struct {
	// Package is the package name parsed from the artifact filename.
	Package string

	// Version is the package version parsed from the artifact filename.
	Version string

	// Architecture is the architecture component of the artifact filename.
	Architecture string

	// File is the artifact filename inside the dist directory.
	File string

	// Size is the artifact size in bytes.
	Size int64

	// ModifiedAt is the artifact modification time.
	ModifiedAt time.Time

	// SHA256 is the hex-encoded checksum of the artifact contents.
	SHA256 string
}

// BuildInfo stores the result of a packaging run.
type BuildInfo struct {
	// BuildID is unique ID of the packaging run.
	BuildID string

	// Name is the project name.
	Name string

	// Version is the raw project version.
	Version string

	// ReleaseID is the derived release identifier.
	ReleaseID string

	// DistDir is the directory where artifacts were deposited.
	DistDir string

	// Installed is true if the produced artifact was installed.
	Installed bool

	// CreatedAt is the time the packaging run started.
	CreatedAt time.Time
}
