package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/kickstart/internal/app"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a template definition for problems",
	Long: `Check a template definition for structural problems.

The path may be a template directory or the template.toml file itself.
Problems are listed one per line and the command exits non-zero when any
are found.

Examples:
  kickstart validate ./templates/go-service
  kickstart validate ./templates/go-service/template.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := app.Validate(cmd.Context(), app.ValidateOptions{Path: args[0]})
	if err != nil {
		return err
	}

	if len(result.Problems) == 0 {
		printSuccess(fmt.Sprintf("%s is valid", result.Path))
		return nil
	}

	for _, problem := range result.Problems {
		printInfo(fmt.Sprintf("  - %s", problem))
	}
	return fmt.Errorf("%s has %d problem(s)", result.Path, len(result.Problems))
}
