package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-sync/internal/document"
	"github.com/jonathan/skill-sync/internal/extraction"
	"github.com/jonathan/skill-sync/internal/merging"
	"github.com/jonathan/skill-sync/internal/observability"
)

var mergeCommand = &cobra.Command{
	Use:   "merge",
	Short: "Merge extracted skills into a resume's SKILLS section",
	Long:  "Merges a previously extracted skills JSON file into the resume's existing skill listing and rewrites the SKILLS section, preserving the rest of the document. Re-running the merge with the same inputs changes nothing.",
	RunE:  runMerge,
}

var (
	mergeSkills  string
	mergeResume  string
	mergeOutput  string
	mergeVerbose bool
)

func init() {
	mergeCommand.Flags().StringVarP(&mergeSkills, "skills", "s", "", "Path to extracted skills JSON file (required)")
	mergeCommand.Flags().StringVarP(&mergeResume, "resume", "r", "", "Path to input resume text file (required)")
	mergeCommand.Flags().StringVarP(&mergeOutput, "out", "o", "", "Path to write the updated resume to (defaults to overwriting the input)")
	mergeCommand.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := mergeCommand.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := mergeCommand.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(mergeCommand)
}

func runMerge(_ *cobra.Command, _ []string) error {
	// 1. Load extracted skills
	skillsContent, err := os.ReadFile(mergeSkills)
	if err != nil {
		return fmt.Errorf("failed to read skills file %s: %w", mergeSkills, err)
	}

	var extracted extraction.AdaptResult
	if err := json.Unmarshal(skillsContent, &extracted); err != nil {
		return fmt.Errorf("failed to unmarshal skills JSON: %w", err)
	}

	// 2. Load and parse the resume
	resumeContent, err := os.ReadFile(mergeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", mergeResume, err)
	}
	resumeText := string(resumeContent)

	section, err := document.ParseSkillSection(resumeText)
	if err != nil {
		return fmt.Errorf("failed to parse resume skills section: %w", err)
	}

	// 3. Merge and rewrite
	result := merging.Merge(section.Set, extracted.Skills)
	if mergeVerbose {
		observability.NewPrinter(os.Stdout).PrintMergeResult(result)
	}

	updated, err := document.RewriteSkillSection(resumeText, merging.RenderForWrite(result.Updated))
	if err != nil {
		return fmt.Errorf("failed to rewrite skills section: %w", err)
	}

	output := mergeOutput
	if output == "" {
		output = mergeResume
	}
	if err := os.WriteFile(output, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write updated resume %s: %w", output, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Merged %d new skills into %s (%d skipped)\n",
		len(result.Added), output, len(result.Skipped))
	return nil
}
