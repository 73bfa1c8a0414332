package extraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/skill-sync/internal/normalizing"
	"github.com/jonathan/skill-sync/internal/types"
)

// modelEntry is one entry of the model payload.
type modelEntry struct {
	Skill    string `json:"skill"`
	Category string `json:"category,omitempty"`
}

// AdaptResult holds the outcome of adapting one model payload.
// Skills preserves the model's emission order, which is assumed to reflect
// salience in the posting. Skipped records entries that failed
// normalization or classification.
type AdaptResult struct {
	Skills  []types.NormalizedSkill `json:"skills"`
	Skipped []types.RawSkillMention `json:"skipped,omitempty"`
}

// Adapt validates a raw model payload and turns it into a normalized,
// deduplicated skill list.
//
// A structurally malformed payload (not a list, entries missing the skill
// field) fails the whole call with MalformedPayloadError. Per-entry
// failures never abort the batch: the offending entry lands in Skipped and
// processing continues. Duplicate canonical names are dropped, first
// occurrence wins.
func Adapt(payload []byte) (*AdaptResult, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	var entries []modelEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		// Schema validation passed, so this only fires on type-level
		// surprises the schema cannot express.
		return nil, &MalformedPayloadError{Detail: "payload does not decode into entries", Cause: err}
	}

	result := &AdaptResult{}
	seen := make(map[string]struct{})

	for _, entry := range entries {
		skill, err := normalizing.NormalizeWithHint(entry.Skill, entry.Category)
		if err != nil {
			adapterErr := &AdapterError{Mention: entry.Skill, Cause: err}
			result.Skipped = append(result.Skipped, types.RawSkillMention{
				Text:   entry.Skill,
				Reason: adapterErr.Error(),
			})
			continue
		}

		if _, dup := seen[skill.Key()]; dup {
			continue
		}
		seen[skill.Key()] = struct{}{}
		result.Skills = append(result.Skills, skill)
	}

	return result, nil
}

// validatePayload checks the payload against the expected schema.
func validatePayload(payload []byte) error {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return &MalformedPayloadError{Detail: "payload is empty"}
	}

	schemaLoader := gojsonschema.NewStringLoader(payloadSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	validation, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &MalformedPayloadError{Detail: "payload is not valid JSON", Cause: err}
	}

	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			details = append(details, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &MalformedPayloadError{Detail: strings.Join(details, "; ")}
	}

	return nil
}
