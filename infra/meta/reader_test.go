package meta

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/debman/debman/config"
)

type fakeToolchain struct {
	fields map[string]string
	asked  []string
}

func (f *fakeToolchain) BuildPackage(ctx context.Context) error              { return nil }
func (f *fakeToolchain) InstallArtifact(ctx context.Context, p string) error { return nil }
func (f *fakeToolchain) RepairDependencies(ctx context.Context) error        { return nil }

func (f *fakeToolchain) ProjectField(ctx context.Context, field string) (string, error) {
	f.asked = append(f.asked, field)
	v, ok := f.fields[field]
	if !ok {
		return "", errors.Errorf("unknown field %s", field)
	}
	return v, nil
}

func metadataCfg(dir string) config.Metadata {
	return config.Metadata{ProjectDir: dir, Python: config.DefaultPython, DistDir: config.DefaultDistDir}
}

func TestProjectFromPyproject(t *testing.T) {
	dir := t.TempDir()
	content := `[project]
name = "hyperspy"
version = "1.2.dev0"
`
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tc := &fakeToolchain{}
	project, err := NewReader(metadataCfg(dir), tc).Project(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if project.Name != "hyperspy" || project.Version != "1.2.dev0" {
		t.Errorf("unexpected project: %+v", project)
	}
	if project.ReleaseID != "hyperspy-1.2~dev0" {
		t.Errorf("unexpected release ID: %s", project.ReleaseID)
	}
	if len(tc.asked) != 0 {
		t.Errorf("setup.py should not be queried when pyproject.toml is complete, asked %v", tc.asked)
	}
}

func TestProjectFallsBackToSetupPy(t *testing.T) {
	dir := t.TempDir()
	// version is dynamic, pyproject.toml cannot answer
	content := `[project]
name = "hyperspy"
dynamic = ["version"]
`
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "setup.py"), []byte("# setup"), 0o600); err != nil {
		t.Fatal(err)
	}

	tc := &fakeToolchain{fields: map[string]string{"--name": "hyperspy", "--version": "1.3.dev2"}}
	project, err := NewReader(metadataCfg(dir), tc).Project(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if project.Name != "hyperspy" || project.Version != "1.3.dev2" {
		t.Errorf("unexpected project: %+v", project)
	}
	if project.ReleaseID != "hyperspy-1.3~dev2" {
		t.Errorf("unexpected release ID: %s", project.ReleaseID)
	}
}

func TestProjectNoMetadataSource(t *testing.T) {
	dir := t.TempDir()
	_, err := NewReader(metadataCfg(dir), &fakeToolchain{}).Project(context.Background())
	if err == nil {
		t.Fatal("expected error for project without metadata source")
	}
}

func TestProjectBrokenPyproject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := NewReader(metadataCfg(dir), &fakeToolchain{}).Project(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed pyproject.toml")
	}
}
