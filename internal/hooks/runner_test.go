package hooks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/kickstart/internal/template/model"
)

// writeHook writes an executable shell script and returns it as a HookFile.
func writeHook(t *testing.T, dir, name, body string) model.HookFile {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write hook %s: %v", name, err)
	}
	return model.HookFile{Name: name, Path: path}
}

func TestRunner_RunsInOrder(t *testing.T) {
	hookDir := t.TempDir()
	workDir := t.TempDir()

	hookFiles := []model.HookFile{
		writeHook(t, hookDir, "first.sh", "echo first >> order.txt\n"),
		writeHook(t, hookDir, "second.sh", "echo second >> order.txt\n"),
	}

	if err := NewRunner().Run(hookFiles, workDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(workDir, "order.txt"))
	if err != nil {
		t.Fatalf("failed to read order file: %v", err)
	}
	if string(content) != "first\nsecond\n" {
		t.Errorf("expected hooks to run in order, got %q", string(content))
	}
}

func TestRunner_FailFast(t *testing.T) {
	hookDir := t.TempDir()
	workDir := t.TempDir()

	hookFiles := []model.HookFile{
		writeHook(t, hookDir, "failing.sh", "touch first-ran\nexit 3\n"),
		writeHook(t, hookDir, "never.sh", "touch second-ran\n"),
	}

	err := NewRunner().Run(hookFiles, workDir)
	if err == nil {
		t.Fatal("expected error, got none")
	}

	var herr *HookError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HookError, got %T", err)
	}
	if herr.Type != HookExitError {
		t.Errorf("expected HookExitError, got %v", herr.Type)
	}
	if herr.Hook != "failing.sh" {
		t.Errorf("expected failing hook name in error, got %q", herr.Hook)
	}
	if !strings.Contains(err.Error(), "failing.sh") {
		t.Errorf("expected error message to name the hook, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "status 3") {
		t.Errorf("expected exit status in error message, got %q", err.Error())
	}

	if _, err := os.Stat(filepath.Join(workDir, "first-ran")); err != nil {
		t.Error("expected first hook to have run")
	}
	if _, err := os.Stat(filepath.Join(workDir, "second-ran")); !os.IsNotExist(err) {
		t.Error("expected second hook to be skipped after failure")
	}
}

func TestRunner_MissingWorkDirLeavesCwdUnset(t *testing.T) {
	hookDir := t.TempDir()
	marker := filepath.Join(t.TempDir(), "marker")

	hookFiles := []model.HookFile{
		writeHook(t, hookDir, "hook.sh", fmt.Sprintf("touch %s\n", marker)),
	}

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if err := NewRunner().Run(hookFiles, missing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(marker); err != nil {
		t.Error("expected hook to run even without a working directory")
	}
}

func TestRunner_EmptyList(t *testing.T) {
	if err := NewRunner().Run(nil, t.TempDir()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunner_StartFailure(t *testing.T) {
	hookFiles := []model.HookFile{
		{Name: "ghost.sh", Path: filepath.Join(t.TempDir(), "ghost.sh")},
	}

	err := NewRunner().Run(hookFiles, t.TempDir())
	if err == nil {
		t.Fatal("expected error, got none")
	}

	var herr *HookError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HookError, got %T", err)
	}
	if herr.Type != HookStartFailed {
		t.Errorf("expected HookStartFailed, got %v", herr.Type)
	}
	if herr.Hook != "ghost.sh" {
		t.Errorf("expected hook name in error, got %q", herr.Hook)
	}
}

func TestRunner_OnHookStart(t *testing.T) {
	hookDir := t.TempDir()

	hookFiles := []model.HookFile{
		writeHook(t, hookDir, "a.sh", "true\n"),
		writeHook(t, hookDir, "b.sh", "true\n"),
	}

	var started []string
	runner := NewRunner()
	runner.OnHookStart = func(hook model.HookFile) {
		started = append(started, hook.Name)
	}

	if err := runner.Run(hookFiles, t.TempDir()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(started) != 2 || started[0] != "a.sh" || started[1] != "b.sh" {
		t.Errorf("expected start notifications in order, got %v", started)
	}
}
