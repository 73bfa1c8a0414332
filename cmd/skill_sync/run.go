package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-sync/internal/config"
	"github.com/jonathan/skill-sync/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full extract-merge-write cycle end-to-end",
	Long: `Orchestrates the whole cycle: ingest job posting -> extract skills via LLM -> normalize and classify -> merge into the resume's existing skills -> rewrite the SKILLS section.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runJob         string
	runResume      string
	runOutput      string
	runAPIKey      string
	runModel       string
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting file (text or HTML)")
	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to input resume text file")
	runCommand.Flags().StringVarP(&runOutput, "out", "o", "", "Path to write the updated resume to")
	runCommand.Flags().StringVar(&runModel, "model", "", "Extraction model name override")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL URL for artifact persistence (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:         runJob,
		Resume:      runResume,
		Output:      runOutput,
		APIKey:      runAPIKey,
		Model:       runModel,
		DatabaseURL: runDatabaseURL,
		Verbose:     runVerbose,
	}

	// Config file values fill in whatever the flags left empty.
	if runConfigPath != "" {
		fileCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Job == "" {
		return fmt.Errorf("--job flag or 'job' config value is required")
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume flag or 'resume' config value is required")
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Resume + ".updated"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.RunPipeline(context.Background(), pipeline.RunOptions{
		JobPath:     cfg.Job,
		ResumePath:  cfg.Resume,
		OutputPath:  cfg.Output,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		DatabaseURL: cfg.DatabaseURL,
		Verbose:     cfg.Verbose,
	})
}
