package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/kickstart/internal/app"
	"github.com/tacogips/kickstart/internal/config"
	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/model"
)

// Global flags
var (
	globalVerbosity int
	globalQuiet     bool
	globalNoColor   bool
	globalConfig    string
)

// Generate flags
var (
	generateOutputDir  string
	generateDirectory  string
	generateInputFile  string
	generateNoInput    bool
	generateRunHooks   bool
	generateCloneDepth int
)

// rootCmd is the generate workflow itself; kickstart's main job needs no
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "kickstart <template>",
	Short: "Generate a project from a template",
	Long: `kickstart generates a project skeleton from a template.

A template is a directory holding a template.toml definition and the file
tree to render. The template can live on the local filesystem or in a git
repository:

  kickstart ./templates/go-service
  kickstart https://github.com/example/service-template -o ./my-service
  kickstart git@github.com:example/templates.git -d go-service

Variable values come from interactive prompts by default, from declared
defaults with --no-input, or from a JSON file with --input-file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(globalVerbosity, !colorEnabled(os.Stderr))
	},
	RunE: runGenerate,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErrorMsg(err.Error())
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountVarP(&globalVerbosity, FlagVerbose, "v", DescVerbose)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)

	// Flags for generation
	rootCmd.Flags().StringVarP(&generateOutputDir, FlagOutputDir, "o", ".", DescOutputDir)
	rootCmd.Flags().StringVarP(&generateDirectory, FlagDirectory, "d", "", DescDirectory)
	rootCmd.Flags().StringVarP(&generateInputFile, FlagInputFile, "i", "", DescInputFile)
	rootCmd.Flags().BoolVar(&generateNoInput, FlagNoInput, false, DescNoInput)
	rootCmd.Flags().BoolVar(&generateRunHooks, FlagRunHooks, true, DescRunHooks)
	rootCmd.Flags().IntVar(&generateCloneDepth, FlagCloneDepth, 1, DescCloneDepth)

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Flags the user set explicitly win over the config file.
	if !cmd.Flags().Changed(FlagOutputDir) {
		generateOutputDir = cfg.Defaults.OutputDir
	}
	if !cmd.Flags().Changed(FlagRunHooks) {
		generateRunHooks = cfg.Defaults.RunHooks
	}
	if !cmd.Flags().Changed(FlagCloneDepth) {
		generateCloneDepth = cfg.Git.CloneDepth
	}

	printProgress(fmt.Sprintf("Fetching template from %s", source))

	opts := app.GenerateOptions{
		Source:     source,
		OutputDir:  generateOutputDir,
		Directory:  generateDirectory,
		InputFile:  generateInputFile,
		NoInput:    generateNoInput,
		RunHooks:   generateRunHooks,
		CloneDepth: generateCloneDepth,
		Events: app.GenerateEvents{
			HookPhaseStarted: func(phase app.HookPhase, count int) {
				printProgress(fmt.Sprintf("Running %d %s hook(s)", count, phase))
			},
			HookStarted: func(phase app.HookPhase, hook model.HookFile) {
				printInfo(fmt.Sprintf("  %s", hook.Name))
			},
		},
	}
	if opts.InputFile == "" && !opts.NoInput {
		opts.Prompter = &surveyPrompter{}
	}

	result, err := app.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		printWarning(warning.Message)
	}

	printSuccess(fmt.Sprintf("Generated project from template %q", result.TemplateName))
	printInfo("")
	printInfo("Summary:")
	printInfo(fmt.Sprintf("  Rendered: %d files", result.FilesCreated))
	if result.FilesCopied > 0 {
		printInfo(fmt.Sprintf("  Copied:   %d files", result.FilesCopied))
	}
	if len(result.Cleaned) > 0 {
		printInfo(fmt.Sprintf("  Removed:  %d paths by cleanup rules", len(result.Cleaned)))
	}
	if result.PreHooksRun > 0 || result.PostHooksRun > 0 {
		printInfo(fmt.Sprintf("  Hooks:    %d pre-generation, %d post-generation", result.PreHooksRun, result.PostHooksRun))
	}
	printInfo(fmt.Sprintf("\nProject ready at: %s", result.OutputDir))

	return nil
}

// loadConfig reads the configuration file. A path given with --config must
// load cleanly; the default location is allowed to be absent.
func loadConfig() (*config.Config, error) {
	if globalConfig != "" {
		return config.Load(globalConfig)
	}
	return config.LoadOrDefault(config.DefaultConfigPath())
}
