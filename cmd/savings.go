package cmd

import (
	"fmt"
	"strings"

	"github.com/marciooo/nido/internal/advice"
	"github.com/marciooo/nido/internal/cli"

	"github.com/spf13/cobra"
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Ways to reduce childcare costs",
	RunE:  runSavings,
}

func init() {
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("WAYS TO SAVE"))
	fmt.Println()

	for _, p := range advice.Programs {
		fmt.Print(cli.RenderMetric(p.Name, p.Range))
		for _, line := range wrapText(p.Summary, 70) {
			fmt.Printf("  %s\n", line)
		}
		fmt.Printf("  %s\n\n", p.Link)
	}

	fmt.Println("  References:")
	for _, ref := range advice.References {
		fmt.Printf("  - %s\n", ref)
	}
	return nil
}

// wrapText splits text into lines no longer than width, on word boundaries.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
