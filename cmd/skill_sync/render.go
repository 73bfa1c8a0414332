package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-sync/internal/document"
	"github.com/jonathan/skill-sync/internal/merging"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render a resume's skill listing as per-category section lines",
	Long:  "Parses the resume's existing SKILLS section and prints the per-category listing a document writer would receive, as text or JSON.",
	RunE:  runRender,
}

var (
	renderResume string
	renderJSON   bool
)

func init() {
	renderCommand.Flags().StringVarP(&renderResume, "resume", "r", "", "Path to resume text file (required)")
	renderCommand.Flags().BoolVar(&renderJSON, "json", false, "Emit JSON instead of text lines")

	if err := renderCommand.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCommand)
}

func runRender(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(renderResume)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", renderResume, err)
	}

	section, err := document.ParseSkillSection(string(content))
	if err != nil {
		return err
	}

	lines := merging.RenderForWrite(section.Set)

	if renderJSON {
		out, err := json.MarshalIndent(lines, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal section lines: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	for _, line := range lines {
		_, _ = fmt.Fprintf(os.Stdout, "%s: %s\n", line.Label, strings.Join(line.Skills, ", "))
	}
	return nil
}
