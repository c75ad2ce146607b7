package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"manus/pkg/chat"
	"manus/pkg/config"
	"manus/pkg/gather"
	"manus/pkg/logging"
	"manus/pkg/remote"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootFlags struct {
	model       string
	directory   string
	repo        string
	initProject bool
	dryRun      bool
	verbose     bool
}

// RootCmd is the base command: gather project context, merge it with the
// prompt, and stream the model's reply.
var RootCmd = &cobra.Command{
	Use:   "manus [prompt]",
	Short: "Manus is a context-aware developer assistant",
	Long: `Manus gathers your project's source files into a single context block,
combines it with your prompt, and streams the model's reply back.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.Setup(rootFlags.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Sync(logger)

	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded environment from .env file")
	}

	root := rootFlags.directory
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve project root: %w", err)
	}

	if rootFlags.initProject {
		return config.InitProject(projectRoot, logger)
	}

	var prompt string
	if len(args) > 0 {
		prompt = args[0]
	}
	if prompt == "" && !rootFlags.dryRun {
		_ = cmd.Help()
		return fmt.Errorf("no prompt provided")
	}

	// Fail on a missing credential before any scanning happens.
	var apiKey string
	if !rootFlags.dryRun {
		if apiKey, err = chat.APIKey(); err != nil {
			return err
		}
	}

	if rootFlags.repo != "" {
		cloneDir, cleanup, cloneErr := remote.CloneTemp(rootFlags.repo, logger)
		if cloneErr != nil {
			return cloneErr
		}
		defer cleanup()
		projectRoot = cloneDir
	}

	cfg := config.Load(projectRoot, logger)
	model := cfg.Model
	if rootFlags.model != "" {
		model = rootFlags.model
	}

	report, err := gather.Gather(projectRoot, gather.Ruleset(cfg.IgnoreFiles), logger)
	if err != nil {
		return fmt.Errorf("failed to gather project context: %w", err)
	}
	logger.Debug("Gathered project context",
		zap.String("root", projectRoot),
		zap.Int("included", len(report.Entries)),
		zap.Int("skipped", len(report.Skipped)))

	contextBlock := report.Render()
	if rootFlags.dryRun {
		fmt.Println(contextBlock)
		return nil
	}

	messages := chat.BuildMessages(cfg.SystemPrompt, contextBlock, prompt)
	client := chat.NewClient(apiKey, logger)

	fmt.Fprintf(os.Stderr, "--- Manus (%s) is thinking... ---\n", model)
	if err := client.Stream(cmd.Context(), model, messages, os.Stdout); err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	fmt.Println()
	fmt.Fprintln(os.Stderr, "--- End of Manus response ---")
	return nil
}

// Execute runs the root command and reports whether it succeeded.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVarP(&rootFlags.model, "model", "m", "", "Override the model configured in manus.json")
	RootCmd.Flags().StringVarP(&rootFlags.directory, "directory", "d", "", "Project root to gather context from (default: current directory)")
	RootCmd.Flags().StringVarP(&rootFlags.repo, "repo", "r", "", "Clone a remote repository and use it as the project root")
	RootCmd.Flags().BoolVarP(&rootFlags.initProject, "init", "i", false, "Create a sample manus.json and .manusignore in the project root")
	RootCmd.Flags().BoolVar(&rootFlags.dryRun, "dry-run", false, "Print the gathered context block instead of calling the model")
	RootCmd.Flags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")
}
