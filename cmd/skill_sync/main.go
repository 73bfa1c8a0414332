// Package main provides the entry point for the skill-sync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill_sync",
	Short: "Sync resume skills with a job posting",
	Long:  "skill_sync extracts skill mentions from a job posting, classifies them into a fixed taxonomy, and merges the result into the resume's skills section without disturbing the rest of the document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
