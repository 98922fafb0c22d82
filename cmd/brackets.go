package cmd

import (
	"fmt"

	"github.com/marciooo/nido/internal/cli"
	"github.com/marciooo/nido/internal/costs"

	"github.com/spf13/cobra"
)

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Compare total cost across all cost brackets",
	RunE:  runBrackets,
}

func init() {
	rootCmd.AddCommand(bracketsCmd)
}

func runBrackets(_ *cobra.Command, _ []string) error {
	result, err := computeEstimate()
	if err != nil {
		return err
	}

	req := result.Request

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BRACKET COMPARISON  %s · %s",
		req.Region, req.CareType.Display())))
	fmt.Println()

	rows := make([][]string, 0, len(result.Multipliers.Brackets)+1)
	for _, bf := range result.Multipliers.Brackets {
		summary, err := costs.Summarize(result.Cumulative, result.Monthly, bf.Name, req.Interval)
		if err != nil {
			return err
		}

		marker := ""
		if bf.Name == req.Bracket {
			marker = "◆"
		}
		rows = append(rows, []string{
			bf.Name,
			fmt.Sprintf("%.2fx", bf.Factor),
			cli.FormatMoney(summary.TotalCost),
			cli.FormatMoneyf(summary.AvgMonthlyCost),
			marker,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Cost from %s to %s of age",
			cli.FormatMonths(req.Interval.Start), cli.FormatMonths(req.Interval.End)),
		Headers: []string{"Bracket", "Factor", "Total", "Avg/Month", ""},
		Rows:    rows,
	}))
	return nil
}
