package cmd

import (
	"fmt"

	"github.com/marciooo/nido/internal/cli"
	"github.com/marciooo/nido/internal/dataset"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List regions and their baseline annual tuition",
	RunE:  runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(_ *cobra.Command, _ []string) error {
	careType := dataset.CenterBased
	if flagCareType != "" {
		ct, err := dataset.ParseCareType(flagCareType)
		if err != nil {
			return err
		}
		careType = ct
	}

	set, err := loadSet()
	if err != nil {
		return err
	}
	if set == nil {
		set = dataset.Default(careType)
	}

	rows := make([][]string, 0, len(set))
	for _, region := range set.Regions() {
		bc, _ := set.Lookup(region)
		rows = append(rows, []string{
			region,
			cli.FormatMoney(bc.Infant),
			cli.FormatMoney(bc.Toddler),
			cli.FormatMoney(bc.Preschool),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Baseline annual tuition · %s", careType.Display()),
		Headers: []string{"Region", "Infant", "Toddler", "Preschool"},
		Rows:    rows,
	}))
	return nil
}
