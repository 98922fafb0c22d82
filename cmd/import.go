package cmd

import (
	"fmt"
	"os"

	"github.com/marciooo/nido/internal/dataset"

	"github.com/spf13/cobra"
)

var (
	flagImportOut  string
	flagImportCare string

	importCmd = &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Convert a Child Care Aware state CSV into a YAML dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
)

func init() {
	importCmd.Flags().StringVarP(&flagImportOut, "out", "o", "", "Output YAML file (default: stdout)")
	importCmd.Flags().StringVar(&flagImportCare, "care-type", "center-based", "Care type label for diagnostics")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()

	set, err := dataset.ImportCSV(f)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Imported %d regions (%s)\n", len(set), flagImportCare)
	}

	if flagImportOut != "" {
		if err := dataset.WriteFile(flagImportOut, set); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagImportOut)
		}
		return nil
	}

	data, err := dataset.Marshal(set)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
