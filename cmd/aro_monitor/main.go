// Package main provides the entry point for the ARO availability monitor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aro_monitor",
	Short: "ARO one-bedroom availability monitor",
	Long:  "Monitors a real-estate listing page for ARO one-bedroom availability and sends email/SMS alerts when units become available.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
