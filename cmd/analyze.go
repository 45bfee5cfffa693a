package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/Grodondo/aitutor/pkg/changelog"
	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/editor"
	"github.com/Grodondo/aitutor/pkg/filediscovery"
	"github.com/Grodondo/aitutor/pkg/prompts"
	"github.com/Grodondo/aitutor/pkg/suggestions"
	"github.com/Grodondo/aitutor/pkg/tutor"
	"github.com/Grodondo/aitutor/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	analyzeLevel       string
	analyzeLineNumbers bool
	analyzeInteractive bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-directory>",
	Short: "Analyze source code and list line-anchored suggestions",
	Long: `Sends the file to the configured model for review and extracts discrete,
line-anchored suggestions from the response. With --interactive, each
suggestion that carries a concrete fix is previewed in place and can be
accepted or rejected one at a time.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadOrInitConfig(skipPrompt)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if model != "" {
			cfg.Model = model
		}

		level, err := prompts.ParseLevel(analyzeLevel)
		if err != nil {
			log.Fatalf("%v", err)
		}

		logger := newLogger(cfg)
		service := tutor.NewService(cfg, logger)

		info, err := os.Stat(args[0])
		if err != nil {
			log.Fatalf("Cannot access %s: %v", args[0], err)
		}

		if info.IsDir() {
			analyzeDirectory(service, logger, cfg, args[0], level)
			return
		}
		if !filediscovery.IsSourceFile(args[0]) {
			log.Fatalf("%s is not a recognized source file", args[0])
		}
		if err := analyzeFile(service, logger, cfg, args[0], level); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLevel, "level", "l", "", "Tutoring level: novice, medium, or expert")
	analyzeCmd.Flags().BoolVar(&analyzeLineNumbers, "line-numbers", true, "Ask the model for line-numbered feedback")
	analyzeCmd.Flags().BoolVarP(&analyzeInteractive, "interactive", "i", false, "Preview and apply suggestions one at a time")
}

func analyzeDirectory(service *tutor.Service, logger *utils.Logger, cfg *config.Config, dir string, level prompts.Level) {
	files, err := filediscovery.DiscoverSourceFiles(dir)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(files) == 0 {
		fmt.Println("No source files found.")
		return
	}
	for _, file := range files {
		fmt.Println()
		color.New(color.Bold).Printf("== %s ==\n", file)
		if err := analyzeFile(service, logger, cfg, file, level); err != nil {
			logger.LogError(err)
		}
	}
}

func analyzeFile(service *tutor.Service, logger *utils.Logger, cfg *config.Config, path string, level prompts.Level) error {
	buf, err := editor.LoadBuffer(path)
	if err != nil {
		return err
	}

	set, err := service.Analyze(tutor.AnalysisRequest{
		Code:               buf.String(),
		Level:              level,
		IncludeLineNumbers: analyzeLineNumbers,
	})
	if err != nil {
		return err
	}

	visible := set.Visible(buf.LineCount())
	if len(visible) == 0 {
		fmt.Println("No suggestions found.")
		return nil
	}

	printSuggestions(visible)

	if analyzeInteractive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return reviewSuggestions(logger, cfg, buf, visible)
	}
	return nil
}

func printSuggestions(set suggestions.SuggestionSet) {
	for _, s := range set.Sorted() {
		color.New(color.FgYellow, color.Bold).Printf("Line %d: ", s.LineIndex+1)
		fmt.Println(s.Message)
		if s.Explanation != "" {
			fmt.Printf("    %s\n", s.Explanation)
		}
		if s.HasDiff() {
			for _, line := range editor.AddedLines(s.Diff) {
				color.Green("    + %s", line)
			}
		}
		fmt.Println()
	}
}

// reviewSuggestions previews each applicable suggestion in the buffer and asks
// the user to accept or reject it. Accepted edits are saved and recorded in the
// change log.
func reviewSuggestions(logger *utils.Logger, cfg *config.Config, buf *editor.Buffer, set suggestions.SuggestionSet) error {
	controller := editor.NewController(buf, tutor.NewLogFeedback(logger))

	for _, s := range set.Sorted() {
		if !s.HasDiff() {
			continue
		}

		before := buf.String()
		if err := controller.Preview(s); err != nil {
			logger.LogProcessStep(fmt.Sprintf("Line %d: %v, skipping", s.LineIndex+1, err))
			continue
		}

		fmt.Println()
		changelog.PrintDiff(buf.Path(), before, buf.String())

		if logger.AskForConfirmation(fmt.Sprintf("Apply suggestion at line %d (%s)?", s.LineIndex+1, s.Message), false) {
			if err := controller.Accept(); err != nil {
				return err
			}
			if err := buf.Save(); err != nil {
				return err
			}
			if cfg.TrackChanges {
				if _, err := changelog.RecordChange(buf.Path(), s.Message, s.LineIndex, before, buf.String()); err != nil {
					logger.LogError(err)
				}
			}
			logger.LogProcessStep("Suggestion applied.")
		} else {
			if err := controller.Reject(); err != nil {
				return err
			}
			logger.LogProcessStep("Suggestion rejected.")
		}
	}

	controller.Dismiss()
	return nil
}
