// Package app implements the kickstart workflows: generating a project
// from a template and validating a template definition.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/kickstart/internal/hooks"
	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/definition"
	"github.com/tacogips/kickstart/internal/template/generator"
	"github.com/tacogips/kickstart/internal/template/model"
	"github.com/tacogips/kickstart/internal/template/provider"
	"github.com/tacogips/kickstart/internal/template/render"
	"github.com/tacogips/kickstart/internal/template/resolver"
)

// HookPhase identifies one of the two hook phases.
type HookPhase string

const (
	// PreGeneration hooks run before the file tree is generated.
	PreGeneration HookPhase = "pre-generation"
	// PostGeneration hooks run after the file tree is generated.
	PostGeneration HookPhase = "post-generation"
)

// GenerateEvents receives progress notifications during a generation run.
// Nil callbacks are skipped.
type GenerateEvents struct {
	// HookPhaseStarted fires once per non-empty hook phase, before its
	// first hook runs.
	HookPhaseStarted func(phase HookPhase, count int)
	// HookStarted fires before each hook is spawned.
	HookStarted func(phase HookPhase, hook model.HookFile)
}

// GenerateOptions holds options for generating a project.
type GenerateOptions struct {
	// Source is the template location: a local path or a git URL.
	Source string
	// OutputDir is the directory receiving the generated project.
	OutputDir string
	// Directory selects a subdirectory of the fetched source as the
	// template root, for repositories holding several templates.
	Directory string
	// InputFile is a JSON file supplying variable values. Mutually
	// exclusive with NoInput.
	InputFile string
	// NoInput resolves every variable from its default without prompting.
	NoInput bool
	// RunHooks controls whether pre/post generation hooks run.
	RunHooks bool
	// CloneDepth is the git history depth for remote templates (0 = full
	// history).
	CloneDepth int
	// Prompter answers interactive prompts. Required unless InputFile or
	// NoInput selects a non-interactive source.
	Prompter resolver.Prompter
	// Events receives progress notifications.
	Events GenerateEvents
}

// GenerateResult holds the outcome of a generation run.
type GenerateResult struct {
	// TemplateName is the definition's display name.
	TemplateName string
	// OutputDir is the absolute output directory.
	OutputDir string
	// Values are the resolved variable values.
	Values model.ResolvedValues
	// Warnings are non-fatal resolution findings, in detection order.
	Warnings []resolver.Warning
	// FilesCreated counts rendered files.
	FilesCreated int
	// FilesCopied counts files copied verbatim.
	FilesCopied int
	// DirsCreated counts directories created under the output directory.
	DirsCreated int
	// Cleaned lists output-relative paths removed by cleanup rules.
	Cleaned []string
	// PreHooksRun counts executed pre-generation hooks.
	PreHooksRun int
	// PostHooksRun counts executed post-generation hooks.
	PostHooksRun int
}

// Generate runs the full workflow: fetch the template, load and check its
// definition, resolve variable values, then run pre-generation hooks,
// render the tree, and run post-generation hooks.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	logger := logging.GetLogger("app")

	if err := validateGenerateOptions(opts); err != nil {
		return nil, err
	}

	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, NewOptionsError("failed to resolve output directory", err)
	}

	prov, err := provider.NewProvider(opts.Source, opts.CloneDepth)
	if err != nil {
		return nil, NewTemplateFetchError("unusable template source", err)
	}
	checkout, err := prov.Fetch(ctx, opts.Source)
	if err != nil {
		return nil, NewTemplateFetchError("failed to fetch template", err)
	}
	defer func() {
		if err := checkout.Cleanup(); err != nil {
			logger.Warn().Err(err).Msg("Failed to clean up template checkout")
		}
	}()

	root := checkout.Dir
	if opts.Directory != "" {
		root = filepath.Join(checkout.Dir, filepath.FromSlash(opts.Directory))
	}

	def, err := definition.LoadFromDir(root)
	if err != nil {
		return nil, NewDefinitionError("failed to load template definition", err)
	}
	if problems := definition.Validate(def); len(problems) > 0 {
		return nil, NewDefinitionError(
			fmt.Sprintf("template definition is invalid: %s", strings.Join(problems, "; ")), nil)
	}

	tmpl := &model.Template{Source: opts.Source, Root: root, Definition: def}

	// Hook files are resolved up front so a missing hook aborts the run
	// before anything has side effects.
	var preHooks, postHooks []model.HookFile
	if opts.RunHooks {
		if preHooks, err = tmpl.PreGenHooks(); err != nil {
			return nil, NewHookError("failed to resolve pre-generation hooks", err)
		}
		if postHooks, err = tmpl.PostGenHooks(); err != nil {
			return nil, NewHookError("failed to resolve post-generation hooks", err)
		}
	}

	engine := render.NewEngine()

	res, err := resolveValues(def, engine, opts)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("template", def.Name).
		Str("outputDir", outputDir).
		Int("variables", len(res.Values)).
		Msg("Resolved template variables")

	runner := hooks.NewRunner()
	if err := runPhase(runner, PreGeneration, preHooks, outputDir, opts.Events); err != nil {
		return nil, err
	}

	genResult, err := generator.New(engine).Generate(ctx, generator.Options{
		Template:  tmpl,
		Values:    res.Values,
		OutputDir: outputDir,
	})
	if err != nil {
		return nil, NewGenerateError("failed to generate project", err)
	}

	if err := runPhase(runner, PostGeneration, postHooks, outputDir, opts.Events); err != nil {
		return nil, err
	}

	return &GenerateResult{
		TemplateName: def.Name,
		OutputDir:    outputDir,
		Values:       res.Values,
		Warnings:     res.Warnings,
		FilesCreated: genResult.FilesCreated,
		FilesCopied:  genResult.FilesCopied,
		DirsCreated:  genResult.DirsCreated,
		Cleaned:      genResult.Cleaned,
		PreHooksRun:  len(preHooks),
		PostHooksRun: len(postHooks),
	}, nil
}

// resolveValues runs resolution with the source the options selected: a
// JSON input file, defaults only, or interactive prompting.
func resolveValues(def *model.Definition, engine *render.Engine, opts GenerateOptions) (*resolver.Result, error) {
	eval := definition.NewEvaluator(def, engine)

	if opts.InputFile != "" {
		data, err := os.ReadFile(opts.InputFile)
		if err != nil {
			return nil, NewResolveError(fmt.Sprintf("failed to read input file %s", opts.InputFile), err)
		}
		res, err := resolver.New(eval, nil).ResolveFromJSON(def.Variables, data)
		if err != nil {
			return nil, NewResolveError("failed to resolve variables from input file", err)
		}
		return res, nil
	}

	res, err := resolver.New(eval, opts.Prompter).Resolve(def.Variables, resolver.Options{
		NoInput: opts.NoInput,
	})
	if err != nil {
		return nil, NewResolveError("failed to resolve variables", err)
	}
	return res, nil
}

// runPhase runs one hook phase. Empty phases are skipped without firing
// events or spawning anything.
func runPhase(runner *hooks.Runner, phase HookPhase, hookFiles []model.HookFile, workDir string, events GenerateEvents) error {
	if len(hookFiles) == 0 {
		return nil
	}

	if events.HookPhaseStarted != nil {
		events.HookPhaseStarted(phase, len(hookFiles))
	}
	runner.OnHookStart = func(hook model.HookFile) {
		if events.HookStarted != nil {
			events.HookStarted(phase, hook)
		}
	}

	if err := runner.Run(hookFiles, workDir); err != nil {
		return NewHookError(fmt.Sprintf("%s hook failed", phase), err)
	}
	return nil
}

// validateGenerateOptions rejects option combinations the workflow cannot
// honor.
func validateGenerateOptions(opts GenerateOptions) error {
	if opts.Source == "" {
		return NewOptionsError("template source cannot be empty", nil)
	}
	if opts.OutputDir == "" {
		return NewOptionsError("output directory cannot be empty", nil)
	}
	if opts.InputFile != "" && opts.NoInput {
		return NewOptionsError("an input file and no-input mode cannot be combined", nil)
	}
	if opts.InputFile != "" {
		info, err := os.Stat(opts.InputFile)
		if err != nil {
			return NewOptionsError(fmt.Sprintf("input file %s not found", opts.InputFile), err)
		}
		if info.IsDir() {
			return NewOptionsError(fmt.Sprintf("input file %s is a directory", opts.InputFile), nil)
		}
	}
	if opts.InputFile == "" && !opts.NoInput && opts.Prompter == nil {
		return NewOptionsError("interactive resolution requires a prompter", nil)
	}
	return nil
}
