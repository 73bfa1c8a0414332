// Package types provides type definitions for structured data used throughout the skill-sync system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Category is one of the fixed skill groupings used throughout the system.
// The set is closed; no dynamic categories.
type Category string

// Category constants define the closed category set, in priority order.
const (
	// CategoryProgramming covers programming languages, frameworks, and toolchains
	CategoryProgramming Category = "programming_and_frameworks"
	// CategoryTools covers databases, backend services, cloud services, and devops tooling
	CategoryTools Category = "software_development_tools"
	// CategoryAIData covers AI, data science, and statistical modeling tools
	CategoryAIData Category = "ai_and_data_science"
)

// categoryLabels maps each category to its resume section heading label
var categoryLabels = map[Category]string{
	CategoryProgramming: "Programming & Frameworks",
	CategoryTools:       "Software Development",
	CategoryAIData:      "AI & Data Science",
}

// categoryAliases maps loose spellings (model hints, heading labels, legacy
// bucket names) to categories. Keys are lowercase.
var categoryAliases = map[string]Category{
	"programming_and_frameworks": CategoryProgramming,
	"programming & frameworks":   CategoryProgramming,
	"programming":                CategoryProgramming,
	"frameworks":                 CategoryProgramming,
	"software_development_tools": CategoryTools,
	"software development":       CategoryTools,
	"development":                CategoryTools,
	"tools":                      CategoryTools,
	"ai_and_data_science":        CategoryAIData,
	"ai & data science":          CategoryAIData,
	"ai":                         CategoryAIData,
	"data science":               CategoryAIData,
}

// Categories returns all categories in their fixed priority order.
func Categories() []Category {
	return []Category{CategoryProgramming, CategoryTools, CategoryAIData}
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the resume section heading label for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory resolves a category from an enum value, heading label, or
// loose hint string. Matching is case-insensitive and tolerates a trailing
// colon (heading labels appear as "Programming & Frameworks:" in documents).
func ParseCategory(s string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, ":")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	cat, ok := categoryAliases[key]
	return cat, ok
}
