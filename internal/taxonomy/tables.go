// Package taxonomy assigns canonical skill names to the fixed category set
// via priority-ordered lookup tables.
package taxonomy

import (
	"strings"

	"github.com/jonathan/skill-sync/internal/types"
)

// membershipTable holds the matching rules for one category. Terms are
// matched exactly; patterns are matched as substrings. All entries are
// lowercase: candidates are lowercased before lookup.
type membershipTable struct {
	category types.Category
	terms    map[string]struct{}
	patterns []string
}

// tables lists the membership tables in their fixed priority order.
// The first matching table wins, so a name that could plausibly fit more
// than one category (Docker, Spark) resolves the same way every run.
var tables = []membershipTable{
	{
		category: types.CategoryProgramming,
		terms: termSet(
			"go", "java", "python", "c", "c++", "c/c++", "c#",
			"javascript", "typescript", "ruby", "rust", "php", "swift",
			"kotlin", "scala", "perl", "objective-c", "dart", "lua",
			"sql", "html", "css", "bash", "powershell",
			"react", "angular", "vue", "svelte", "node.js", "express",
			"next.js", "jquery", "django", "flask", "fastapi", "rails",
			"laravel", ".net", "asp.net", "gin", "echo",
			"git", "graphql", "rest",
		),
		patterns: []string{"framework"},
	},
	{
		category: types.CategoryTools,
		terms: termSet(
			"docker", "kubernetes", "helm", "terraform", "ansible",
			"mysql", "postgresql", "mongodb", "redis", "sqlite", "firebase",
			"cassandra", "dynamodb", "elasticsearch", "memcached",
			"aws", "azure", "gcp", "google cloud", "heroku",
			"spring boot", "kafka", "rabbitmq", "grpc", "nginx",
			"jenkins", "github actions", "gitlab ci", "circleci", "ci/cd",
			"linux", "unix", "grafana", "prometheus", "datadog",
			"maven", "gradle", "webpack", "vite", "jira", "postman",
			"s3", "lambda", "ec2",
		),
		patterns: []string{"sql", "cloud", "devops", "database", "microservice"},
	},
	{
		category: types.CategoryAIData,
		terms: termSet(
			"r", "pandas", "numpy", "scipy", "scikit-learn", "matplotlib",
			"tensorflow", "pytorch", "keras", "jupyter", "opencv",
			"tableau", "power bi", "matlab", "sas", "spss", "excel",
			"spark", "hadoop", "airflow", "dbt", "snowflake",
			"rag", "llm", "nlp", "hugging face", "langchain",
			"a/b testing", "regression analysis", "machine learning",
			"deep learning", "computer vision", "data analysis",
			"statistics", "etl",
		),
		patterns: []string{
			"machine learning", "deep learning", "data scien", "statistic",
			"regression", "neural", "analytics", " analysis", "llm", "genai",
		},
	},
}

// matches reports whether a lowercased candidate hits this table, checking
// exact terms before substring patterns.
func (t *membershipTable) matches(key string) bool {
	if _, ok := t.terms[key]; ok {
		return true
	}
	for _, pattern := range t.patterns {
		if strings.Contains(key, pattern) {
			return true
		}
	}
	return false
}

// termSet builds an exact-match set from a term list.
func termSet(terms ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}
