package toolchain

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/outofforest/libexec"
	"github.com/pkg/errors"

	"github.com/debman/debman/config"
	"github.com/debman/debman/lib/retry"
)

// dpkg and apt share the dpkg frontend lock, concurrent package operations on
// the host make them fail transiently.
const (
	lockRetries    = 5
	lockRetryAfter = 3 * time.Second
)

// Toolchain abstracts the external packaging tools driven by the commands.
type Toolchain interface {
	// BuildPackage produces binary package artifacts in the dist directory.
	BuildPackage(ctx context.Context) error

	// InstallArtifact installs the artifact into the host system.
	InstallArtifact(ctx context.Context, path string) error

	// RepairDependencies resolves missing dependencies of a just-installed package.
	RepairDependencies(ctx context.Context) error

	// ProjectField queries a single metadata field from setup.py, e.g. --version.
	ProjectField(ctx context.Context, field string) (string, error)
}

// NewDebianToolchain returns toolchain driving stdeb, dpkg and apt-get.
func NewDebianToolchain(config config.Metadata) Toolchain {
	return &debianToolchain{
		config:     config,
		euid:       os.Geteuid(),
		retryAfter: lockRetryAfter,
		execFn: func(ctx context.Context, cmd *exec.Cmd) error {
			return libexec.Exec(ctx, cmd)
		},
	}
}

type debianToolchain struct {
	config     config.Metadata
	euid       int
	retryAfter time.Duration
	execFn     func(ctx context.Context, cmd *exec.Cmd) error
}

// BuildPackage runs stdeb's bdist_deb against the project.
func (t *debianToolchain) BuildPackage(ctx context.Context) error {
	cmd := exec.Command(t.config.Python, "setup.py", "--command-packages=stdeb.command", "bdist_deb")
	cmd.Dir = t.config.ProjectDir
	return errors.Wrap(t.execFn(ctx, cmd), "packaging toolchain failed")
}

// InstallArtifact installs the artifact with dpkg.
func (t *debianToolchain) InstallArtifact(ctx context.Context, path string) error {
	return t.privileged(ctx, "dpkg", "-i", path)
}

// RepairDependencies runs apt-get in fix-broken mode.
func (t *debianToolchain) RepairDependencies(ctx context.Context) error {
	return t.privileged(ctx, "apt-get", "-f", "install", "-y")
}

// ProjectField runs setup.py with a query flag and returns the printed value.
func (t *debianToolchain) ProjectField(ctx context.Context, field string) (string, error) {
	cmd := exec.Command(t.config.Python, "setup.py", field)
	cmd.Dir = t.config.ProjectDir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := t.execFn(ctx, cmd); err != nil {
		return "", errors.Wrapf(err, "querying %s from setup.py failed", field)
	}
	value := lastLine(out.String())
	if value == "" {
		return "", errors.Errorf("setup.py returned no value for %s", field)
	}
	return value, nil
}

func (t *debianToolchain) privileged(ctx context.Context, name string, args ...string) error {
	argv := commandLine(t.euid, name, args...)
	return retry.Do(ctx, lockRetries, t.retryAfter, func() error {
		var stderr bytes.Buffer
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
		err := t.execFn(ctx, cmd)
		if err != nil && lockBusy(stderr.String()) {
			return retry.Retryable(err)
		}
		return err
	})
}

// commandLine wraps the command in sudo unless running as root already.
func commandLine(euid int, name string, args ...string) []string {
	argv := make([]string, 0, len(args)+2)
	if euid != 0 {
		argv = append(argv, "sudo")
	}
	argv = append(argv, name)
	return append(argv, args...)
}

// lockBusy tells if tool output indicates dpkg lock contention.
func lockBusy(output string) bool {
	return strings.Contains(output, "/var/lib/dpkg/lock") ||
		strings.Contains(output, "Could not get lock") ||
		strings.Contains(output, "dpkg frontend lock")
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
