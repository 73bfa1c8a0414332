// Package llm - extractor.go builds the skill extraction prompt and runs it.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// maxSkillsPerCategory caps how many skills the model may emit per category.
// Keeps the rewritten section to one line per category in the document.
const maxSkillsPerCategory = 9

// extractionPreamble describes the extraction task and the category
// vocabulary. The category values match the hint strings the adapter
// accepts.
const extractionPreamble = `You are a resume skill optimizer.
From the following job description, extract technical skills and classify each one.

Categories:
- "programming": programming languages, frameworks, toolchains (e.g. Java, Python, React, Git)
- "development": databases, backend services, cloud services, devops (e.g. MySQL, MongoDB, AWS, Redis, Docker)
- "ai": AI, data science, statistical modeling tools (e.g. R, Pandas, Regression Analysis, Tableau, A/B Testing)

Rules:
1. Keep only concrete technical skills explicitly mentioned in the job description.
2. Discard vague or overly broad terms (e.g. "backend technologies", "cloud platform").
3. List skills in order of importance to the posting, most important first.
4. No more than %d skills per category.
5. Return ONLY a JSON array, no markdown, no explanation:
[{"skill": "<skill name>", "category": "<programming|development|ai>"}]`

// BuildExtractionPrompt constructs the skill extraction prompt for a job
// description.
func BuildExtractionPrompt(jobText string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(extractionPreamble, maxSkillsPerCategory))
	sb.WriteString("\n\nJob description:\n\"\"\"\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// ExtractSkills runs the extraction prompt against the model and returns the
// raw payload bytes for the adapter to validate. No trust decisions happen
// here; the payload is untrusted until the adapter accepts it.
func ExtractSkills(ctx context.Context, client Client, jobText string) ([]byte, error) {
	prompt := BuildExtractionPrompt(jobText)

	response, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}

	return []byte(CleanJSONBlock(response)), nil
}
