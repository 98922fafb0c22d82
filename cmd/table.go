package cmd

import (
	"fmt"

	"github.com/marciooo/nido/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagCumulative bool

	tableCmd = &cobra.Command{
		Use:   "table",
		Short: "Print the projected cost series month by month",
		RunE:  runTable,
	}
)

func init() {
	tableCmd.Flags().BoolVar(&flagCumulative, "cumulative", false, "Show cumulative instead of monthly costs")
	rootCmd.AddCommand(tableCmd)
}

func runTable(_ *cobra.Command, _ []string) error {
	result, err := computeEstimate()
	if err != nil {
		return err
	}

	brackets := result.Monthly.Brackets
	points := result.Monthly.Points
	title := "Monthly cost per bracket"
	if flagCumulative {
		points = result.Cumulative.Points
		title = "Cumulative cost per bracket"
	}

	headers := append([]string{"Month", "Age"}, brackets...)
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		row := []string{
			fmt.Sprintf("%d", p.Month),
			cli.FormatMonths(p.Month),
		}
		for _, bracket := range brackets {
			row = append(row, cli.FormatMoney(p.Values[bracket]))
		}
		rows = append(rows, row)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: headers,
		Rows:    rows,
	}))
	return nil
}
