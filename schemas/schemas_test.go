package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-sync/internal/schemas"
)

var schemaFiles = []string{
	"extracted_skills.schema.json",
	"skill_set.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema,
				"schema should declare both type and $schema")
		})
	}
}

func TestExtractedSkillsSchema_AcceptsModelPayload(t *testing.T) {
	payload := []byte(`[
		{"skill": "Go", "category": "programming"},
		{"skill": "Docker"}
	]`)

	err := schemas.ValidateBytes("extracted_skills.schema.json", payload)
	assert.NoError(t, err)
}

func TestExtractedSkillsSchema_RejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"object not array", `{"skill": "Go"}`},
		{"missing skill field", `[{"category": "programming"}]`},
		{"unexpected field", `[{"skill": "Go", "weight": 1.0}]`},
		{"non-string skill", `[{"skill": 1}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := schemas.ValidateBytes("extracted_skills.schema.json", []byte(tc.payload))
			require.Error(t, err)

			var verr *schemas.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
		})
	}
}

func TestSkillSetSchema_AcceptsRenderedSet(t *testing.T) {
	payload := []byte(`{
		"programming_and_frameworks": [
			{"canonical_name": "Go", "category": "programming_and_frameworks"},
			{"canonical_name": "JavaScript", "category": "programming_and_frameworks", "alias_of": "JS"}
		],
		"ai_and_data_science": [
			{"canonical_name": "Pandas", "category": "ai_and_data_science"}
		]
	}`)

	err := schemas.ValidateBytes("skill_set.schema.json", payload)
	assert.NoError(t, err)
}

func TestSkillSetSchema_RejectsUnknownCategory(t *testing.T) {
	payload := []byte(`{"certifications": [{"canonical_name": "AWS SAA"}]}`)

	err := schemas.ValidateBytes("skill_set.schema.json", payload)
	require.Error(t, err)
}
