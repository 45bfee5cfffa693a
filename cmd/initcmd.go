package cmd

import (
	"log"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the active configuration into the workspace",
	Long: `Creates .aitutor/config.json in the current directory so this workspace
gets its own settings, starting from the home configuration (or the defaults)
with any flag overrides applied.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadOrInitConfig(skipPrompt)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if model != "" {
			cfg.Model = model
		}
		if err := cfg.SaveToWorkspace(); err != nil {
			log.Fatalf("Failed to write workspace config: %v", err)
		}
		log.Println("Wrote .aitutor/config.json")
	},
}
