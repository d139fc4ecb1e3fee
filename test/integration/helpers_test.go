package integration

import (
	"os"
	"path/filepath"
	"testing"
)

// fixturePath returns the absolute path of a committed fixture template.
// Local templates are read in place and never written to, so tests can
// point generation directly at the fixture.
func fixturePath(t *testing.T, name string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("..", "fixtures", "templates", name))
	if err != nil {
		t.Fatalf("failed to resolve fixture path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s not found: %v", name, err)
	}
	return path
}

// writeInputFile writes a JSON input file and returns its path.
func writeInputFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return path
}

// writeTemplateFile writes one file of an ad hoc template rooted at root.
func writeTemplateFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// writeHookScript writes an executable shell script into a template.
func writeHookScript(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write hook %s: %v", rel, err)
	}
}

func readOutput(t *testing.T, outputDir, rel string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(outputDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read generated file %s: %v", rel, err)
	}
	return string(content)
}

func assertAbsent(t *testing.T, outputDir, rel string) {
	t.Helper()

	if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(rel))); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent from output", rel)
	}
}
