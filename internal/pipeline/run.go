// Package pipeline provides the high-level orchestration for one
// merge-and-write cycle: job text in, updated resume out.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-sync/internal/db"
	"github.com/jonathan/skill-sync/internal/document"
	"github.com/jonathan/skill-sync/internal/extraction"
	"github.com/jonathan/skill-sync/internal/ingestion"
	"github.com/jonathan/skill-sync/internal/llm"
	"github.com/jonathan/skill-sync/internal/merging"
	"github.com/jonathan/skill-sync/internal/observability"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	JobPath     string
	ResumePath  string
	OutputPath  string
	APIKey      string
	Model       string // optional extraction model override
	DatabaseURL string
	Verbose     bool
	Client      llm.Client // optional injection; created from APIKey when nil
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// RunPipeline orchestrates the full merge-and-write cycle. At most one
// cycle runs against a given resume file at a time; concurrent invocations
// against the same file are undefined.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	printer := observability.NewPrinter(os.Stdout)

	// Optional persistence; the run proceeds without it.
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			runID, err = database.CreateRun(ctx, opts.JobPath, opts.ResumePath)
			if err != nil {
				fmt.Printf("Warning: Failed to create run record: %v\n", err)
			}
		}
	}

	// Step 1: Ingest job posting
	fmt.Printf("Step 1/5: Ingesting job posting from %s...\n", opts.JobPath)
	jobText, err := ingestion.IngestFromFile(opts.JobPath)
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}
	emitProgress(&opts, db.StepJobText, "ingested job posting")
	saveTextArtifact(ctx, database, runID, db.StepJobText, jobText)

	client := opts.Client
	if client == nil {
		cfg := llm.DefaultConfig()
		if opts.Model != "" {
			cfg.Models[llm.TierLite] = opts.Model
		}
		client, err = llm.NewClient(ctx, cfg, opts.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	// Steps 2+3 are independent: extraction talks to the model while the
	// existing skill section is read from the resume.
	fmt.Printf("Step 2/5: Extracting skills...\n")
	fmt.Printf("Step 3/5: Reading existing resume skills from %s...\n", opts.ResumePath)

	var adapted *extraction.AdaptResult
	var resumeText string
	var section *document.SkillSection

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		payload, err := llm.ExtractSkills(groupCtx, client, jobText)
		if err != nil {
			return fmt.Errorf("skill extraction failed: %w", err)
		}
		adapted, err = extraction.Adapt(payload)
		if err != nil {
			// Malformed payload halts the run before any document mutation.
			return fmt.Errorf("extraction payload rejected: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		content, err := os.ReadFile(opts.ResumePath)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", opts.ResumePath, err)
		}
		resumeText = string(content)
		section, err = document.ParseSkillSection(resumeText)
		if err != nil {
			return fmt.Errorf("failed to parse resume skills section: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return err
	}

	emitProgress(&opts, db.StepExtractedSkills,
		fmt.Sprintf("extracted %d skills, skipped %d", len(adapted.Skills), len(adapted.Skipped)))
	saveArtifact(ctx, database, runID, db.StepExtractedSkills, adapted.Skills)
	if opts.Verbose {
		printer.PrintExtractedSkills(adapted)
	}

	// Step 4: Merge
	fmt.Printf("Step 4/5: Merging skills...\n")
	result := merging.Merge(section.Set, adapted.Skills)
	// Adapter skips (bad mentions) and merge skips (category conflicts)
	// both belong in the run's diagnostics.
	result.Skipped = append(adapted.Skipped, result.Skipped...)
	emitProgress(&opts, db.StepMergeResult, fmt.Sprintf("added %d skills", len(result.Added)))
	saveArtifact(ctx, database, runID, db.StepMergeResult, result)
	if opts.Verbose {
		printer.PrintMergeResult(result)
	}

	// Step 5: Rewrite the document
	fmt.Printf("Step 5/5: Writing updated resume to %s...\n", opts.OutputPath)
	lines := merging.RenderForWrite(result.Updated)
	updatedResume, err := document.RewriteSkillSection(resumeText, lines)
	if err != nil {
		return fmt.Errorf("failed to rewrite skills section: %w", err)
	}
	if err := os.WriteFile(opts.OutputPath, []byte(updatedResume), 0644); err != nil {
		return fmt.Errorf("failed to write updated resume %s: %w", opts.OutputPath, err)
	}
	emitProgress(&opts, db.StepUpdatedResume, "wrote updated resume")
	saveTextArtifact(ctx, database, runID, db.StepUpdatedResume, updatedResume)
	if opts.Verbose {
		printer.PrintSectionLines(lines)
	}

	if database != nil && runID != uuid.Nil {
		if err := database.CompleteRun(ctx, runID, "completed"); err != nil {
			fmt.Printf("Warning: Failed to complete run record: %v\n", err)
		}
	}

	fmt.Printf("Done. Added %d skills, skipped %d mentions.\n", len(result.Added), len(result.Skipped))
	return nil
}

// saveArtifact persists a JSON artifact when a database is configured.
// Persistence failures never fail the run.
func saveArtifact(ctx context.Context, database *db.DB, runID uuid.UUID, step string, content any) {
	if database == nil || runID == uuid.Nil {
		return
	}
	if err := database.SaveArtifact(ctx, runID, step, content); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
}

// saveTextArtifact persists a text artifact when a database is configured.
func saveTextArtifact(ctx context.Context, database *db.DB, runID uuid.UUID, step, text string) {
	if database == nil || runID == uuid.Nil {
		return
	}
	if err := database.SaveTextArtifact(ctx, runID, step, text); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
}
