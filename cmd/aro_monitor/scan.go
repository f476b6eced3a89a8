package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/aro-monitor/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the matcher over a saved HTML file",
	Long:  "Runs the availability matcher over a local HTML file and prints the matches. Useful for tuning the listing selectors against a saved copy of the real page without hitting the site.",
	RunE:  runScan,
}

var scanFile string

func init() {
	scanCmd.Flags().StringVarP(&scanFile, "file", "f", "", "Path to a saved HTML file (required)")

	if err := scanCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scanFile)
	if err != nil {
		return fmt.Errorf("read HTML file %s: %w", scanFile, err)
	}

	matches := scan.Matches(string(data), time.Now())
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No ARO one-bedroom matches found")
		return nil
	}

	for i, m := range matches {
		fmt.Fprintf(os.Stdout, "[%d] %s (available=%t)\n", i+1, m.Category, m.Available)
		fmt.Fprintf(os.Stdout, "    %s\n", m.Excerpt)
	}
	fmt.Fprintf(os.Stdout, "%d match(es), %d available\n", len(matches), len(scan.Available(matches)))

	return nil
}
