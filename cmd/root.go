package cmd

import (
	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	skipPrompt bool
	model      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aitutor",
	Short: "AI coding tutor for your editor and terminal",
	Long: `Aitutor asks a Large Language Model for commentary on your source code and
turns the raw response into discrete, line-anchored suggestions that can be
previewed, applied, and reverted safely.

Available commands:
  analyze  - Analyze a file or directory and list suggestions
  suggest  - Get one focused suggestion for the block at a line
  serve    - Run the editor-plugin bridge (HTTP + websocket)
  log      - Browse and revert applied suggestions
  init     - Write the active configuration into the workspace`,
}

// newLogger returns the workspace logger with output mode taken from cfg.
func newLogger(cfg *config.Config) *utils.Logger {
	logger := utils.GetLogger(cfg.SkipPrompt)
	if cfg.JsonLogs {
		logger.EnableJSONLogs()
	}
	return logger
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&skipPrompt, "skip-prompt", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Override the configured model")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(initCmd)
}
