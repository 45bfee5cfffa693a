package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// PrintHistory writes all recorded changes to stdout, newest first, each with a
// truncated diff preview.
func PrintHistory() error {
	changes, err := LoadChanges()
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		fmt.Println("No changes recorded.")
		return nil
	}

	for _, change := range changes {
		fmt.Println(strings.Repeat("-", 80))
		color.New(color.FgYellow).Printf("(%s)", change.Filename)
		fmt.Printf(" -- %s%s%s", BoldStyle, change.RevisionID, ResetColor)
		if change.Status != StatusActive {
			fmt.Printf(" - \x1b[2m%s\x1b[0m\n", change.Status)
		} else {
			color.Green(" - %s\n", change.Status)
		}
		fmt.Printf("%sTime:%s %s\n\n", BoldStyle, ResetColor, change.Timestamp.Format(time.RFC1123))
		fmt.Printf("    Line %d: %s\n\n", change.LineIndex+1, change.Message)

		diff := GetDiff(change.Filename, change.Original, change.New)
		diffLines := strings.Split(diff, "\n")
		if len(diffLines) > 8 {
			for _, line := range diffLines[:8] {
				fmt.Println(line)
			}
			fmt.Println("...")
		} else {
			for _, line := range diffLines {
				fmt.Println(line)
			}
		}
	}
	return nil
}
