package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-sync/internal/extraction"
	"github.com/jonathan/skill-sync/internal/ingestion"
	"github.com/jonathan/skill-sync/internal/llm"
	"github.com/jonathan/skill-sync/internal/observability"
	"github.com/jonathan/skill-sync/internal/schemas"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract normalized skills from a job posting",
	Long:  "Extracts skill mentions from a job posting file via the LLM, normalizes and classifies them, and writes the validated skill list as JSON.",
	RunE:  runExtract,
}

var (
	extractJob     string
	extractOutput  string
	extractAPIKey  string
	extractModel   string
	extractVerbose bool
)

func init() {
	extractCommand.Flags().StringVarP(&extractJob, "job", "j", "", "Path to job posting file (required)")
	extractCommand.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output skills JSON file (required)")
	extractCommand.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	extractCommand.Flags().StringVar(&extractModel, "model", "", "Extraction model name override")
	extractCommand.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := extractCommand.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := extractCommand.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCommand)
}

func runExtract(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// 1. Ingest the posting
	jobText, err := ingestion.IngestFromFile(extractJob)
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	// 2. Run extraction
	cfg := llm.DefaultConfig()
	if extractModel != "" {
		cfg.Models[llm.TierLite] = extractModel
	}
	client, err := llm.NewClient(ctx, cfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	payload, err := llm.ExtractSkills(ctx, client, jobText)
	if err != nil {
		return err
	}

	// 3. Validate the raw payload against the on-disk schema (non-fatal;
	// the adapter enforces the same shape structurally)
	if schemaPath := schemas.ResolveSchemaPath("schemas/extracted_skills.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, payload); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: payload failed schema validation: %v\n", err)
		}
	}

	// 4. Adapt: normalize, classify, dedupe
	result, err := extraction.Adapt(payload)
	if err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintExtractedSkills(result)
	}

	// 5. Write the adapted result
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skills to JSON: %w", err)
	}

	outputDir := filepath.Dir(extractOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(extractOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write skills to output file %s: %w", extractOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d skills (%d skipped) to %s\n",
		len(result.Skills), len(result.Skipped), extractOutput)
	return nil
}
