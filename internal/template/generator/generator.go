// Package generator renders a fetched template's file tree into an output
// directory using the resolved variable values.
package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/model"
	"github.com/tacogips/kickstart/internal/template/render"
)

// Options configures one generation run.
type Options struct {
	// Template is the fetched template whose content root is rendered.
	Template *model.Template

	// Values are the resolved variable values driving path and content
	// rendering.
	Values model.ResolvedValues

	// OutputDir is the directory receiving the generated project. Created
	// if it does not exist; existing files are overwritten.
	OutputDir string
}

// Result reports what a generation run produced.
type Result struct {
	// FilesCreated counts files whose contents were rendered.
	FilesCreated int

	// FilesCopied counts files copied verbatim: binary files and files
	// matching copy_without_render patterns.
	FilesCopied int

	// DirsCreated counts directories created under the output directory.
	DirsCreated int

	// Cleaned lists output-relative paths removed by cleanup rules, in
	// rule order.
	Cleaned []string
}

// Generator materializes template trees.
type Generator struct {
	engine *render.Engine
}

// New creates a Generator rendering paths and contents with the given
// engine.
func New(engine *render.Engine) *Generator {
	return &Generator{engine: engine}
}

// Generate walks the template content root in lexical order and produces
// the output tree: entry paths are rendered as template expressions,
// directories are created, text files are rendered, binary files and
// copy_without_render matches are copied verbatim. After the walk, cleanup
// rules whose variable resolved to the rule's value delete their rendered
// paths from the output.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("generator")

	contentRoot := opts.Template.ContentRoot()
	rootInfo, err := os.Stat(contentRoot)
	if err != nil {
		return nil, newGeneratorError(GeneratorWalkFailed,
			"template content directory not found",
			contentRoot,
			err)
	}
	if !rootInfo.IsDir() {
		return nil, newGeneratorError(GeneratorWalkFailed,
			"template content path is not a directory",
			contentRoot,
			nil)
	}

	def := opts.Template.Definition
	data := opts.Values.TemplateData()
	result := &Result{}

	logger.Debug().
		Str("template", def.Name).
		Str("contentRoot", contentRoot).
		Str("outputDir", opts.OutputDir).
		Msg("Starting generation")

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, newGeneratorError(GeneratorWriteFailed,
			"failed to create output directory",
			opts.OutputDir,
			err)
	}

	walkErr := filepath.WalkDir(contentRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newGeneratorError(GeneratorWalkFailed,
				"failed to read template entry",
				path,
				err)
		}

		rel, err := filepath.Rel(contentRoot, path)
		if err != nil {
			return newGeneratorError(GeneratorWalkFailed,
				"failed to resolve template entry path",
				path,
				err)
		}
		if rel == "." {
			return nil
		}
		relSlash := filepath.ToSlash(rel)

		if ShouldIgnore(relSlash, def.Ignore) {
			logger.Debug().Str("path", relSlash).Msg("Ignoring template entry")
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		outRel, err := g.renderPath(relSlash, data)
		if err != nil {
			return err
		}
		outPath := filepath.Join(opts.OutputDir, outRel)

		if d.IsDir() {
			if _, err := os.Stat(outPath); err == nil {
				return nil
			}
			if err := os.MkdirAll(outPath, 0o755); err != nil {
				return newGeneratorError(GeneratorWriteFailed,
					"failed to create directory",
					outPath,
					err)
			}
			result.DirsCreated++
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return newGeneratorError(GeneratorWalkFailed,
				"failed to read template file",
				path,
				err)
		}
		info, err := d.Info()
		if err != nil {
			return newGeneratorError(GeneratorWalkFailed,
				"failed to stat template file",
				path,
				err)
		}

		if MatchesAny(relSlash, def.CopyWithoutRender) || isBinary(raw) {
			logger.Debug().Str("path", relSlash).Str("output", outRel).Msg("Copying file verbatim")
			if err := writeFileAtomic(outPath, raw, info.Mode()); err != nil {
				return err
			}
			result.FilesCopied++
			return nil
		}

		rendered, err := g.engine.Render(relSlash, string(raw), data)
		if err != nil {
			return newGeneratorError(GeneratorRenderFailed,
				"failed to render file",
				relSlash,
				err)
		}
		logger.Debug().Str("path", relSlash).Str("output", outRel).Msg("Rendering file")
		if err := writeFileAtomic(outPath, []byte(rendered), info.Mode()); err != nil {
			return err
		}
		result.FilesCreated++
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	cleaned, err := g.applyCleanup(def.Cleanup, opts.Values, data, opts.OutputDir)
	if err != nil {
		return nil, err
	}
	result.Cleaned = cleaned

	logger.Debug().
		Int("filesCreated", result.FilesCreated).
		Int("filesCopied", result.FilesCopied).
		Int("dirsCreated", result.DirsCreated).
		Int("cleaned", len(result.Cleaned)).
		Msg("Generation complete")

	return result, nil
}

// applyCleanup deletes the rendered paths of every cleanup rule whose
// variable resolved to the rule's value. Rules naming unresolved variables
// never fire. Paths that do not exist are skipped.
func (g *Generator) applyCleanup(rules []model.CleanupRule, values model.ResolvedValues, data map[string]any, outputDir string) ([]string, error) {
	logger := logging.GetLogger("generator")

	cleaned := []string{}
	for _, rule := range rules {
		resolved, ok := values[rule.Name]
		if !ok {
			continue
		}

		expected, err := model.ValueFromTOML(rule.Value)
		if err != nil {
			return nil, newGeneratorError(GeneratorCleanupFailed,
				fmt.Sprintf("cleanup rule for variable %q has an unsupported value", rule.Name),
				"",
				err)
		}
		if !resolved.Equal(expected) {
			continue
		}

		for _, p := range rule.Paths {
			outRel, err := g.renderPath(p, data)
			if err != nil {
				return nil, err
			}
			target := filepath.Join(outputDir, outRel)
			if _, err := os.Stat(target); os.IsNotExist(err) {
				continue
			}
			if err := os.RemoveAll(target); err != nil {
				return nil, newGeneratorError(GeneratorCleanupFailed,
					"failed to remove path",
					target,
					err)
			}
			logger.Debug().Str("path", outRel).Str("variable", rule.Name).Msg("Cleaned up path")
			cleaned = append(cleaned, filepath.ToSlash(outRel))
		}
	}
	return cleaned, nil
}

// validateOptions validates Options.
func validateOptions(opts Options) error {
	if opts.Template == nil {
		return fmt.Errorf("template cannot be nil")
	}

	if opts.Template.Definition == nil {
		return fmt.Errorf("template definition cannot be nil")
	}

	if opts.Values == nil {
		return fmt.Errorf("resolved values cannot be nil")
	}

	if opts.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	return nil
}
