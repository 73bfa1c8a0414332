package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/skill-sync/internal/types"
)

// GetMergeResultByRunID loads the merge result artifact for a run.
func (db *DB) GetMergeResultByRunID(ctx context.Context, runID uuid.UUID) (*types.MergeResult, error) {
	content, err := db.GetArtifact(ctx, runID, StepMergeResult)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.MergeResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merge result: %w", err)
	}
	return &result, nil
}

// GetExtractedSkillsByRunID loads the extracted skills artifact for a run.
func (db *DB) GetExtractedSkillsByRunID(ctx context.Context, runID uuid.UUID) ([]types.NormalizedSkill, error) {
	content, err := db.GetArtifact(ctx, runID, StepExtractedSkills)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var skills []types.NormalizedSkill
	if err := json.Unmarshal(content, &skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extracted skills: %w", err)
	}
	return skills, nil
}
