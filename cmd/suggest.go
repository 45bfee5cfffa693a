package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/Grodondo/aitutor/pkg/changelog"
	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/editor"
	"github.com/Grodondo/aitutor/pkg/prompts"
	"github.com/Grodondo/aitutor/pkg/tutor"
	"github.com/Grodondo/aitutor/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	suggestLine  int
	suggestLevel string
	suggestApply bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Get one focused suggestion for the block at a line",
	Long: `Locates the logical block of code around the given line using textual
heuristics, asks the model for a single focused improvement of that block, and
optionally previews and applies it in place.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadOrInitConfig(skipPrompt)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if model != "" {
			cfg.Model = model
		}
		level, err := prompts.ParseLevel(suggestLevel)
		if err != nil {
			log.Fatalf("%v", err)
		}

		logger := newLogger(cfg)
		if err := runSuggest(tutor.NewService(cfg, logger), logger, cfg, args[0], suggestLine, level); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLine, "line", "n", 1, "1-based cursor line")
	suggestCmd.Flags().StringVarP(&suggestLevel, "level", "l", "", "Tutoring level: novice, medium, or expert")
	suggestCmd.Flags().BoolVar(&suggestApply, "apply", false, "Preview the suggestion in the file and ask to apply it")
}

func runSuggest(service *tutor.Service, logger *utils.Logger, cfg *config.Config, path string, line int, level prompts.Level) error {
	buf, err := editor.LoadBuffer(path)
	if err != nil {
		return err
	}

	cursor := buf.ClampLine(line - 1)
	start, end := editor.FindBlockBounds(buf.Lines(), cursor)
	snippet := strings.Join(buf.Range(start, end), "\n")
	logger.LogProcessStep(fmt.Sprintf("Analyzing block at lines %d-%d...", start+1, end+1))

	sugg, err := service.AnalyzeSnippet(snippet, level)
	if err != nil {
		return err
	}

	// The model anchored against the snippet; re-anchor into the file.
	sugg.LineIndex = buf.ClampLine(start + sugg.LineIndex)

	color.New(color.FgYellow, color.Bold).Printf("Line %d: ", sugg.LineIndex+1)
	fmt.Println(sugg.Message)
	if sugg.Explanation != "" {
		fmt.Printf("    %s\n", sugg.Explanation)
	}

	if !suggestApply {
		if sugg.HasDiff() {
			for _, l := range editor.AddedLines(sugg.Diff) {
				color.Green("    + %s", l)
			}
		}
		return nil
	}

	controller := editor.NewController(buf, tutor.NewLogFeedback(logger))
	before := buf.String()
	if err := controller.Preview(sugg); err != nil {
		return err
	}

	fmt.Println()
	changelog.PrintDiff(buf.Path(), before, buf.String())

	if logger.AskForConfirmation("Apply this suggestion?", false) {
		if err := controller.Accept(); err != nil {
			return err
		}
		if err := buf.Save(); err != nil {
			return err
		}
		if cfg.TrackChanges {
			if _, err := changelog.RecordChange(buf.Path(), sugg.Message, sugg.LineIndex, before, buf.String()); err != nil {
				logger.LogError(err)
			}
		}
		logger.LogProcessStep("Suggestion applied.")
		return nil
	}

	if err := controller.Reject(); err != nil {
		return err
	}
	logger.LogProcessStep("Suggestion rejected.")
	return nil
}
