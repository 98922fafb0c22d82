package cmd

import (
	"fmt"

	"github.com/marciooo/nido/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Region:    %s\n", cfg.General.Region)
	fmt.Printf("    Care type: %s\n", cfg.General.CareType)
	fmt.Printf("    Bracket:   %s\n", cfg.General.Bracket)
	fmt.Println()

	fmt.Println("  [Ages]")
	fmt.Printf("    Range:    %d-%d months (step %d)\n", cfg.Ages.MinMonth, cfg.Ages.MaxMonth, cfg.Ages.Step)
	fmt.Printf("    Interval: %d-%d months\n", cfg.Ages.DefaultStart, cfg.Ages.DefaultEnd)
	fmt.Println()

	fmt.Println("  [Multipliers]")
	fmt.Printf("    Low:     %.2f\n", cfg.Multipliers.Low)
	fmt.Printf("    Average: %.2f\n", cfg.Multipliers.Average)
	fmt.Printf("    High:    %.2f\n", cfg.Multipliers.High)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if len(cfg.Tuition.Overrides) > 0 {
		fmt.Println("  [Tuition overrides]")
		for region, ov := range cfg.Tuition.Overrides {
			fmt.Printf("    %s:", region)
			if ov.Infant != nil {
				fmt.Printf(" infant=$%d", *ov.Infant)
			}
			if ov.Toddler != nil {
				fmt.Printf(" toddler=$%d", *ov.Toddler)
			}
			if ov.Preschool != nil {
				fmt.Printf(" preschool=$%d", *ov.Preschool)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	fmt.Println("  Run `nido setup` to reconfigure.")
	return nil
}
