package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/dataset"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to nido!")
	fmt.Println()

	// 1. Region
	fmt.Println("  1. Where do you live?")
	fmt.Printf("     Known regions: %s\n", strings.Join(dataset.Default(dataset.CenterBased).Regions(), ", "))
	fmt.Printf("     Current: %s\n", cfg.General.Region)
	fmt.Print("     > ")
	region, _ := reader.ReadString('\n')
	region = strings.TrimSpace(region)
	if region != "" {
		if _, ok := dataset.Default(dataset.CenterBased).Lookup(region); !ok {
			fmt.Printf("     (unknown region %q kept anyway; use --dataset to supply it)\n", region)
		}
		cfg.General.Region = region
	}
	fmt.Println()

	// 2. Care type
	fmt.Println("  2. Type of daycare")
	fmt.Println("     (1) Center Based [default]")
	fmt.Println("     (2) Family Care")
	fmt.Print("     > ")
	careChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(careChoice) {
	case "2":
		cfg.General.CareType = string(dataset.FamilyCare)
	default:
		cfg.General.CareType = string(dataset.CenterBased)
	}
	fmt.Println()

	// 3. Cost bracket
	fmt.Printf("  3. Compared with all of %s, I expect my cost to be:\n", cfg.General.Region)
	fmt.Println("     (1) Low")
	fmt.Println("     (2) Average [default]")
	fmt.Println("     (3) High")
	fmt.Print("     > ")
	bracketChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(bracketChoice) {
	case "1":
		cfg.General.Bracket = config.BracketLow
	case "3":
		cfg.General.Bracket = config.BracketHigh
	default:
		cfg.General.Bracket = config.BracketAverage
	}
	fmt.Println()

	// 4. Care interval
	fmt.Println("  4. Time in daycare, in months of age")
	fmt.Printf("     Current: %d to %d\n", cfg.Ages.DefaultStart, cfg.Ages.DefaultEnd)
	fmt.Print("     Start > ")
	if start, ok := readInt(reader); ok && start >= cfg.Ages.MinMonth && start <= cfg.Ages.MaxMonth {
		cfg.Ages.DefaultStart = start
	}
	fmt.Print("     End   > ")
	if end, ok := readInt(reader); ok && end >= cfg.Ages.DefaultStart && end <= cfg.Ages.MaxMonth {
		cfg.Ages.DefaultEnd = end
	}
	fmt.Println()

	// 5. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `nido` for an estimate or `nido tui` for the dashboard.")
	return nil
}

func readInt(reader *bufio.Reader) (int, bool) {
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}
