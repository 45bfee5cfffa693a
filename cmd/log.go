package cmd

import (
	"log"

	"github.com/Grodondo/aitutor/pkg/changelog"
	"github.com/spf13/cobra"
)

var logRevert string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Browse and revert applied suggestions",
	Long: `Shows the history of suggestions applied to this workspace, newest first.
Use --revert with a revision ID to restore a file to its pre-suggestion
content.`,
	Run: func(cmd *cobra.Command, args []string) {
		if logRevert != "" {
			if err := changelog.RevertChange(logRevert); err != nil {
				log.Fatalf("Revert failed: %v", err)
			}
			log.Printf("Reverted revision %s.", logRevert)
			return
		}
		if err := changelog.PrintHistory(); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	logCmd.Flags().StringVar(&logRevert, "revert", "", "Revision ID to revert")
}
