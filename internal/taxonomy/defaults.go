package taxonomy

// defaultCategories is the built-in technical skill taxonomy
var defaultCategories = []Category{
	{
		Name: "Programming Languages",
		Keywords: []string{
			"python", "javascript", "java", "c++", "c#", "php", "ruby", "go",
			"rust", "swift", "kotlin", "typescript", "scala", "r", "matlab",
			"perl", "shell", "bash", "powershell",
		},
	},
	{
		Name: "Web Technologies",
		Keywords: []string{
			"html", "css", "react", "angular", "vue", "node.js", "nodejs",
			"express", "django", "flask", "laravel", "spring", "asp.net",
			"jquery", "bootstrap", "sass", "less", "webpack", "rest api",
			"graphql", "soap",
		},
	},
	{
		Name: "Databases",
		Keywords: []string{
			"sql", "mysql", "postgresql", "mongodb", "sqlite", "oracle",
			"redis", "elasticsearch", "cassandra", "dynamodb", "neo4j",
			"mariadb", "sql server",
		},
	},
	{
		Name: "Cloud & DevOps",
		Keywords: []string{
			"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
			"jenkins", "git", "github", "gitlab", "ci/cd", "terraform",
			"ansible", "chef", "puppet", "vagrant", "linux", "unix",
		},
	},
	{
		Name: "Data Science & ML",
		Keywords: []string{
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn",
			"jupyter", "data analysis", "statistics", "nlp", "computer vision",
			"ai", "artificial intelligence", "neural networks",
		},
	},
	{
		Name: "Mobile Development",
		Keywords: []string{
			"ios", "android", "react native", "flutter", "xamarin",
			"swift", "objective-c", "kotlin", "java",
		},
	},
	{
		Name: "Tools & Frameworks",
		Keywords: []string{
			"visual studio", "intellij", "eclipse", "sublime", "vim",
			"postman", "jira", "confluence", "slack", "trello", "agile",
			"scrum", "kanban",
		},
	},
}

// industryCategories are domain keyword groups listed alongside the taxonomy.
// They do not take part in matching or scoring.
var industryCategories = []Category{
	{
		Name: "Software Engineering",
		Keywords: []string{
			"software development", "full stack", "backend", "frontend",
			"microservices", "api development", "code review", "debugging",
			"testing", "unit testing", "integration testing",
		},
	},
	{
		Name: "Data Science",
		Keywords: []string{
			"data mining", "predictive modeling", "statistical analysis",
			"data visualization", "big data", "etl", "data pipeline",
			"business intelligence", "analytics",
		},
	},
	{
		Name: "DevOps",
		Keywords: []string{
			"infrastructure", "deployment", "monitoring", "automation",
			"scalability", "performance optimization", "security",
		},
	},
}

var criticalSkills = []string{
	"python", "sql", "git", "javascript", "react", "aws", "docker",
	"machine learning", "data analysis", "agile",
}

var softSkills = []string{"leadership", "communication", "teamwork", "problem solving"}

var defaultTaxonomy = MustNew(defaultCategories)

// Default returns the built-in technical taxonomy.
func Default() *Taxonomy {
	return defaultTaxonomy
}

// CriticalSkills returns the high-demand skills checked by the suggestion engine, in order.
func CriticalSkills() []string {
	return append([]string(nil), criticalSkills...)
}

// SoftSkills returns the soft skills checked by the suggestion engine, in order.
func SoftSkills() []string {
	return append([]string(nil), softSkills...)
}

// IndustryKeywords returns the industry keyword groups.
func IndustryKeywords() []Category {
	out := make([]Category, len(industryCategories))
	for i, c := range industryCategories {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// Listing is the full keyword inventory: the active taxonomy plus the fixed
// lists the suggestion engine and reports draw on.
type Listing struct {
	Categories       []Category `json:"categories"`
	CriticalSkills   []string   `json:"critical_skills"`
	SoftSkills       []string   `json:"soft_skills"`
	IndustryKeywords []Category `json:"industry_keywords"`
}

// Listing returns the inventory for t.
func (t *Taxonomy) Listing() Listing {
	return Listing{
		Categories:       t.Categories(),
		CriticalSkills:   CriticalSkills(),
		SoftSkills:       SoftSkills(),
		IndustryKeywords: IndustryKeywords(),
	}
}
