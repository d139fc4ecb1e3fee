// Package hooks runs template lifecycle hooks as child processes.
//
// Hooks run strictly in list order and the first failure stops the list.
// There is no timeout: the runner blocks until each hook exits. Hook
// output streams through the parent's stdio so interactive hooks work.
package hooks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/model"
)

// Runner executes lifecycle hooks sequentially.
type Runner struct {
	// OnHookStart, when set, is called with each hook just before it is
	// spawned.
	OnHookStart func(hook model.HookFile)
}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the hooks in order with workDir as their working directory.
// A workDir that does not exist (or is not a directory) leaves the working
// directory unset; post-generation hooks rely on the generated directory,
// pre-generation hooks may run before it exists. An empty list is a no-op.
func (r *Runner) Run(hookFiles []model.HookFile, workDir string) error {
	for _, hook := range hookFiles {
		if err := r.runOne(hook, workDir); err != nil {
			return err
		}
	}
	return nil
}

// runOne spawns a single hook and waits for it to exit.
func (r *Runner) runOne(hook model.HookFile, workDir string) error {
	logger := logging.GetLogger("hooks")

	if r.OnHookStart != nil {
		r.OnHookStart(hook)
	}

	cmd := exec.Command(hook.Path)
	if info, err := os.Stat(workDir); err == nil && info.IsDir() {
		cmd.Dir = workDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug().
		Str("hook", hook.Name).
		Str("path", hook.Path).
		Str("workDir", cmd.Dir).
		Msg("Running hook")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return newHookError(HookExitError, hook.Name,
				fmt.Sprintf("exited with status %d", exitErr.ExitCode()), err)
		}
		return newHookError(HookStartFailed, hook.Name, "failed to start", err)
	}

	logger.Debug().Str("hook", hook.Name).Msg("Hook completed")
	return nil
}
