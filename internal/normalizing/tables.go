// Package normalizing canonicalizes raw skill mentions so that equivalent
// surface forms compare equal.
package normalizing

// skillAliases maps known alternate spellings and abbreviations to one
// canonical display name. Keys are lowercase; lookup happens before
// classification.
var skillAliases = map[string]string{
	"js":         "JavaScript",
	"ts":         "TypeScript",
	"golang":     "Go",
	"go lang":    "Go",
	"py":         "Python",
	"cpp":        "C++",
	"c sharp":    "C#",
	"k8s":        "Kubernetes",
	"kube":       "Kubernetes",
	"reactjs":    "React",
	"react.js":   "React",
	"vuejs":      "Vue",
	"vue.js":     "Vue",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"nextjs":     "Next.js",
	"postgres":   "PostgreSQL",
	"psql":       "PostgreSQL",
	"mongo":      "MongoDB",
	"es":         "Elasticsearch",
	"sklearn":    "scikit-learn",
	"tf":         "TensorFlow",
	"ml":         "Machine Learning",
	"dl":         "Deep Learning",
	"amazon web services": "AWS",
	"google cloud platform": "GCP",
	"ms sql":     "SQL Server",
	"mssql":      "SQL Server",
	"gh actions": "GitHub Actions",
	"a/b test":   "A/B Testing",
	"ab testing": "A/B Testing",
}

// canonicalSpellings maps lowercase forms of known terms to their accepted
// display spelling. Unknown terms retain their trimmed input casing.
var canonicalSpellings = map[string]string{
	"go":                  "Go",
	"java":                "Java",
	"python":              "Python",
	"c":                   "C",
	"c++":                 "C++",
	"c/c++":               "C/C++",
	"c#":                  "C#",
	"r":                   "R",
	"javascript":          "JavaScript",
	"typescript":          "TypeScript",
	"ruby":                "Ruby",
	"rust":                "Rust",
	"php":                 "PHP",
	"swift":               "Swift",
	"kotlin":              "Kotlin",
	"scala":               "Scala",
	"sql":                 "SQL",
	"html":                "HTML",
	"css":                 "CSS",
	"bash":                "Bash",
	"powershell":          "PowerShell",
	"react":               "React",
	"angular":             "Angular",
	"vue":                 "Vue",
	"svelte":              "Svelte",
	"node.js":             "Node.js",
	"express":             "Express",
	"next.js":             "Next.js",
	"jquery":              "jQuery",
	"django":              "Django",
	"flask":               "Flask",
	"fastapi":             "FastAPI",
	"rails":               "Rails",
	"laravel":             "Laravel",
	".net":                ".NET",
	"asp.net":             "ASP.NET",
	"git":                 "Git",
	"graphql":             "GraphQL",
	"rest":                "REST",
	"grpc":                "gRPC",
	"docker":              "Docker",
	"kubernetes":          "Kubernetes",
	"helm":                "Helm",
	"terraform":           "Terraform",
	"ansible":             "Ansible",
	"mysql":               "MySQL",
	"postgresql":          "PostgreSQL",
	"mongodb":             "MongoDB",
	"redis":               "Redis",
	"sqlite":              "SQLite",
	"firebase":            "Firebase",
	"cassandra":           "Cassandra",
	"dynamodb":            "DynamoDB",
	"elasticsearch":       "Elasticsearch",
	"sql server":          "SQL Server",
	"aws":                 "AWS",
	"azure":               "Azure",
	"gcp":                 "GCP",
	"heroku":              "Heroku",
	"spring boot":         "Spring Boot",
	"kafka":               "Kafka",
	"rabbitmq":            "RabbitMQ",
	"nginx":               "Nginx",
	"jenkins":             "Jenkins",
	"github actions":      "GitHub Actions",
	"gitlab ci":           "GitLab CI",
	"circleci":            "CircleCI",
	"ci/cd":               "CI/CD",
	"linux":               "Linux",
	"unix":                "Unix",
	"grafana":             "Grafana",
	"prometheus":          "Prometheus",
	"datadog":             "Datadog",
	"maven":               "Maven",
	"gradle":              "Gradle",
	"webpack":             "Webpack",
	"vite":                "Vite",
	"jira":                "Jira",
	"postman":             "Postman",
	"pandas":              "Pandas",
	"numpy":               "NumPy",
	"scipy":               "SciPy",
	"scikit-learn":        "scikit-learn",
	"matplotlib":          "Matplotlib",
	"tensorflow":          "TensorFlow",
	"pytorch":             "PyTorch",
	"keras":               "Keras",
	"jupyter":             "Jupyter",
	"opencv":              "OpenCV",
	"tableau":             "Tableau",
	"power bi":            "Power BI",
	"matlab":              "MATLAB",
	"sas":                 "SAS",
	"spss":                "SPSS",
	"excel":               "Excel",
	"spark":               "Spark",
	"hadoop":              "Hadoop",
	"airflow":             "Airflow",
	"dbt":                 "dbt",
	"snowflake":           "Snowflake",
	"rag":                 "RAG",
	"llm":                 "LLM",
	"nlp":                 "NLP",
	"hugging face":        "Hugging Face",
	"langchain":           "LangChain",
	"a/b testing":         "A/B Testing",
	"regression analysis": "Regression Analysis",
	"machine learning":    "Machine Learning",
	"deep learning":       "Deep Learning",
	"computer vision":     "Computer Vision",
	"data analysis":       "Data Analysis",
	"statistics":          "Statistics",
	"etl":                 "ETL",
}
