// Package extraction adapts raw model output into validated, normalized
// skill lists. All trust decisions about payload shape happen here, never
// downstream.
package extraction

// payloadSchema is the JSON Schema the model payload must satisfy: a list
// of entries, each with a required skill-name field and an optional
// category hint. A copy lives at schemas/extracted_skills.schema.json for
// validating artifacts on disk.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ExtractedSkills",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "skill": {
        "type": "string"
      },
      "category": {
        "type": "string"
      }
    },
    "required": ["skill"],
    "additionalProperties": false
  }
}`
