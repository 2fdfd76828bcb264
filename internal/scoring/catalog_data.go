package scoring

// builtinProfiles is the stock requirement table. Weights per profile sum to 1.0.
var builtinProfiles = map[string]map[string]ProfileSpec{
	"data_analyst": {
		"fresher": {
			RequiredSkills:  []string{"sql", "excel", "analytics", "python"},
			PreferredSkills: []string{"tableau", "power bi", "reporting", "visualization", "statistical analysis"},
			TechnicalWeight: 0.4,
			BusinessWeight:  0.4,
			SoftWeight:      0.2,
			MinWords:        250,
			MinSkills:       3,
		},
		"intermediate": {
			RequiredSkills:  []string{"sql", "excel", "analytics", "python", "visualization"},
			PreferredSkills: []string{"tableau", "power bi", "looker", "statistical analysis", "business intelligence"},
			TechnicalWeight: 0.45,
			BusinessWeight:  0.35,
			SoftWeight:      0.2,
			MinWords:        350,
			MinSkills:       5,
		},
		"experienced": {
			RequiredSkills:  []string{"sql", "excel", "analytics", "python", "visualization", "business intelligence"},
			PreferredSkills: []string{"tableau", "power bi", "looker", "statistical analysis", "ml", "predictive"},
			TechnicalWeight: 0.5,
			BusinessWeight:  0.3,
			SoftWeight:      0.2,
			MinWords:        450,
			MinSkills:       6,
		},
	},
	"bi_engineer": {
		"fresher": {
			RequiredSkills:  []string{"sql", "power bi", "etl", "data"},
			PreferredSkills: []string{"azure", "aws", "python", "reporting", "data warehouse"},
			TechnicalWeight: 0.5,
			BusinessWeight:  0.3,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       3,
		},
		"intermediate": {
			RequiredSkills:  []string{"sql", "power bi", "etl", "data pipeline", "azure"},
			PreferredSkills: []string{"aws", "python", "data warehouse", "informatica", "looker"},
			TechnicalWeight: 0.55,
			BusinessWeight:  0.25,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       5,
		},
		"experienced": {
			RequiredSkills:  []string{"sql", "power bi", "etl", "data pipeline", "azure", "aws"},
			PreferredSkills: []string{"python", "data warehouse", "informatica", "spark", "machine learning"},
			TechnicalWeight: 0.6,
			BusinessWeight:  0.2,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       6,
		},
	},
	"data_scientist": {
		"fresher": {
			RequiredSkills:  []string{"python", "ml", "machine learning", "statistics", "sql"},
			PreferredSkills: []string{"tensorflow", "scikit-learn", "pandas", "numpy", "r", "data analysis"},
			TechnicalWeight: 0.6,
			BusinessWeight:  0.2,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"python", "ml", "machine learning", "statistics", "sql", "tensorflow"},
			PreferredSkills: []string{"scikit-learn", "pandas", "deep learning", "nlp", "pytorch", "data modeling"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"python", "ml", "machine learning", "statistics", "sql", "tensorflow", "deep learning"},
			PreferredSkills: []string{"scikit-learn", "pytorch", "nlp", "nlp", "mlops", "research", "publications"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       7,
		},
	},
	"analytics_engineer": {
		"fresher": {
			RequiredSkills:  []string{"sql", "data warehouse", "python", "analytics"},
			PreferredSkills: []string{"dbt", "snowflake", "bigquery", "modeling", "python"},
			TechnicalWeight: 0.55,
			BusinessWeight:  0.25,
			SoftWeight:      0.2,
			MinWords:        280,
			MinSkills:       3,
		},
		"intermediate": {
			RequiredSkills:  []string{"sql", "data warehouse", "python", "dbt", "analytics"},
			PreferredSkills: []string{"snowflake", "bigquery", "modeling", "airflow", "git", "ci/cd"},
			TechnicalWeight: 0.6,
			BusinessWeight:  0.2,
			SoftWeight:      0.2,
			MinWords:        380,
			MinSkills:       5,
		},
		"experienced": {
			RequiredSkills:  []string{"sql", "data warehouse", "python", "dbt", "analytics", "modeling"},
			PreferredSkills: []string{"snowflake", "bigquery", "airflow", "git", "ci/cd", "leadership"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        480,
			MinSkills:       6,
		},
	},
	"ml_engineer": {
		"fresher": {
			RequiredSkills:  []string{"python", "ml", "machine learning", "deep learning", "tensorflow"},
			PreferredSkills: []string{"pytorch", "nlp", "computer vision", "scikit-learn", "keras", "deployment"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"python", "ml", "deep learning", "tensorflow", "pytorch", "deployment"},
			PreferredSkills: []string{"nlp", "computer vision", "kubernetes", "docker", "aws", "mlops"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"python", "ml", "deep learning", "tensorflow", "pytorch", "deployment", "mlops"},
			PreferredSkills: []string{"kubernetes", "docker", "aws", "gcp", "research", "publications", "system design"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       7,
		},
	},
	"data_engineer": {
		"fresher": {
			RequiredSkills:  []string{"python", "sql", "etl", "data pipeline", "hadoop"},
			PreferredSkills: []string{"spark", "scala", "aws", "azure", "kafka", "airflow"},
			TechnicalWeight: 0.6,
			BusinessWeight:  0.2,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"python", "sql", "etl", "data pipeline", "spark", "aws"},
			PreferredSkills: []string{"scala", "kafka", "airflow", "docker", "kubernetes", "hive"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"python", "sql", "etl", "spark", "aws", "data architecture", "system design"},
			PreferredSkills: []string{"scala", "kafka", "kubernetes", "ci/cd", "performance tuning", "leadership"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       7,
		},
	},
	"database_admin": {
		"fresher": {
			RequiredSkills:  []string{"sql", "database", "mysql", "postgresql", "backup"},
			PreferredSkills: []string{"sql server", "oracle", "monitoring", "performance", "security"},
			TechnicalWeight: 0.6,
			BusinessWeight:  0.2,
			SoftWeight:      0.2,
			MinWords:        280,
			MinSkills:       3,
		},
		"intermediate": {
			RequiredSkills:  []string{"sql", "database", "mysql", "postgresql", "backup", "monitoring"},
			PreferredSkills: []string{"sql server", "oracle", "performance tuning", "security", "replication"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        380,
			MinSkills:       5,
		},
		"experienced": {
			RequiredSkills:  []string{"sql", "database", "mysql", "postgresql", "backup", "monitoring", "performance tuning"},
			PreferredSkills: []string{"sql server", "oracle", "security", "high availability", "disaster recovery"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        480,
			MinSkills:       7,
		},
	},
	"business_analyst": {
		"fresher": {
			RequiredSkills:  []string{"sql", "excel", "analytics", "requirements", "business"},
			PreferredSkills: []string{"power bi", "tableau", "python", "visualization", "communication"},
			TechnicalWeight: 0.35,
			BusinessWeight:  0.5,
			SoftWeight:      0.15,
			MinWords:        280,
			MinSkills:       3,
		},
		"intermediate": {
			RequiredSkills:  []string{"sql", "excel", "analytics", "requirements", "business intelligence", "python"},
			PreferredSkills: []string{"power bi", "tableau", "visualization", "communication", "project management"},
			TechnicalWeight: 0.4,
			BusinessWeight:  0.45,
			SoftWeight:      0.15,
			MinWords:        380,
			MinSkills:       5,
		},
		"experienced": {
			RequiredSkills:  []string{"sql", "excel", "analytics", "business intelligence", "python", "project management"},
			PreferredSkills: []string{"power bi", "tableau", "visualization", "communication", "leadership", "strategy"},
			TechnicalWeight: 0.35,
			BusinessWeight:  0.5,
			SoftWeight:      0.15,
			MinWords:        480,
			MinSkills:       6,
		},
	},
	"backend_developer": {
		"fresher": {
			RequiredSkills:  []string{"python", "java", "nodejs", "api", "sql", "database"},
			PreferredSkills: []string{"rest", "microservices", "git", "docker", "testing", "design patterns"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        280,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"python", "java", "nodejs", "api", "sql", "database", "microservices"},
			PreferredSkills: []string{"rest", "docker", "kubernetes", "git", "testing", "ci/cd"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        380,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"python", "java", "nodejs", "api", "database", "microservices", "system design"},
			PreferredSkills: []string{"docker", "kubernetes", "ci/cd", "aws", "gcp", "performance optimization"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        480,
			MinSkills:       7,
		},
	},
	"frontend_developer": {
		"fresher": {
			RequiredSkills:  []string{"javascript", "html", "css", "react", "git"},
			PreferredSkills: []string{"typescript", "angular", "vue", "css", "responsive design", "testing"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        260,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"javascript", "react", "html", "css", "git", "api"},
			PreferredSkills: []string{"typescript", "webpack", "responsive design", "testing", "performance", "ui/ux"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        360,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"javascript", "react", "typescript", "git", "design patterns", "testing"},
			PreferredSkills: []string{"webpack", "performance optimization", "accessibility", "ui/ux", "aws", "ci/cd"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        460,
			MinSkills:       7,
		},
	},
	"fullstack_developer": {
		"fresher": {
			RequiredSkills:  []string{"javascript", "python", "react", "nodejs", "sql", "database"},
			PreferredSkills: []string{"typescript", "html", "css", "api", "git", "docker"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       5,
		},
		"intermediate": {
			RequiredSkills:  []string{"javascript", "react", "nodejs", "python", "database", "sql", "api"},
			PreferredSkills: []string{"typescript", "docker", "git", "testing", "microservices", "ci/cd"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       7,
		},
		"experienced": {
			RequiredSkills:  []string{"javascript", "react", "nodejs", "python", "database", "system design", "api"},
			PreferredSkills: []string{"typescript", "docker", "kubernetes", "ci/cd", "aws", "performance"},
			TechnicalWeight: 0.8,
			BusinessWeight:  0.0,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       8,
		},
	},
	"software_developer": {
		"fresher": {
			RequiredSkills:  []string{"java", "python", "c++", "oop", "git", "data structures"},
			PreferredSkills: []string{"design patterns", "testing", "api", "database", "algorithms"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        280,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"java", "python", "oop", "design patterns", "testing", "git"},
			PreferredSkills: []string{"api", "database", "ci/cd", "microservices", "docker"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        380,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"java", "python", "design patterns", "system architecture", "testing"},
			PreferredSkills: []string{"microservices", "docker", "ci/cd", "aws", "performance optimization"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        480,
			MinSkills:       7,
		},
	},
	"software_tester": {
		"fresher": {
			RequiredSkills:  []string{"testing", "qa", "test automation", "bug tracking", "sql"},
			PreferredSkills: []string{"selenium", "jira", "manual testing", "api testing", "documentation"},
			TechnicalWeight: 0.5,
			BusinessWeight:  0.3,
			SoftWeight:      0.2,
			MinWords:        260,
			MinSkills:       3,
		},
		"intermediate": {
			RequiredSkills:  []string{"testing", "test automation", "selenium", "sql", "api testing"},
			PreferredSkills: []string{"jira", "performance testing", "mobile testing", "ci/cd", "python"},
			TechnicalWeight: 0.55,
			BusinessWeight:  0.25,
			SoftWeight:      0.2,
			MinWords:        360,
			MinSkills:       5,
		},
		"experienced": {
			RequiredSkills:  []string{"testing", "test automation", "selenium", "api testing", "performance testing"},
			PreferredSkills: []string{"ci/cd", "python", "mobile testing", "test strategy", "leadership"},
			TechnicalWeight: 0.6,
			BusinessWeight:  0.2,
			SoftWeight:      0.2,
			MinWords:        460,
			MinSkills:       6,
		},
	},
	"devops_engineer": {
		"fresher": {
			RequiredSkills:  []string{"docker", "kubernetes", "linux", "git", "ci/cd"},
			PreferredSkills: []string{"aws", "jenkins", "terraform", "monitoring", "bash"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        280,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"docker", "kubernetes", "linux", "ci/cd", "aws"},
			PreferredSkills: []string{"jenkins", "terraform", "monitoring", "bash", "ansible"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        380,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"docker", "kubernetes", "aws", "ci/cd", "infrastructure as code"},
			PreferredSkills: []string{"terraform", "monitoring", "ansible", "gcp", "azure"},
			TechnicalWeight: 0.8,
			BusinessWeight:  0.0,
			SoftWeight:      0.2,
			MinWords:        480,
			MinSkills:       7,
		},
	},
	"cloud_architect": {
		"fresher": {
			RequiredSkills:  []string{"aws", "cloud design", "ec2", "s3", "security"},
			PreferredSkills: []string{"azure", "gcp", "load balancing", "auto-scaling", "monitoring"},
			TechnicalWeight: 0.65,
			BusinessWeight:  0.15,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"aws", "azure", "cloud design", "security", "cost optimization"},
			PreferredSkills: []string{"gcp", "terraform", "microservices", "disaster recovery", "compliance"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"aws", "azure", "gcp", "cloud architecture", "security", "cost optimization"},
			PreferredSkills: []string{"terraform", "microservices", "disaster recovery", "compliance", "leadership"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       7,
		},
	},
	"security_engineer": {
		"fresher": {
			RequiredSkills:  []string{"security", "encryption", "penetration testing", "firewalls", "network"},
			PreferredSkills: []string{"vulnerability assessment", "security tools", "linux", "api security"},
			TechnicalWeight: 0.7,
			BusinessWeight:  0.1,
			SoftWeight:      0.2,
			MinWords:        300,
			MinSkills:       4,
		},
		"intermediate": {
			RequiredSkills:  []string{"security", "penetration testing", "encryption", "firewalls", "incident response"},
			PreferredSkills: []string{"siem", "vulnerability assessment", "secure coding", "api security", "linux"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        400,
			MinSkills:       6,
		},
		"experienced": {
			RequiredSkills:  []string{"security architecture", "penetration testing", "incident response", "compliance"},
			PreferredSkills: []string{"siem", "vulnerability management", "secure coding", "risk assessment"},
			TechnicalWeight: 0.75,
			BusinessWeight:  0.05,
			SoftWeight:      0.2,
			MinWords:        500,
			MinSkills:       7,
		},
	},
}

var defaultCatalog = mustCatalog(builtinProfiles)

// DefaultCatalog returns the built-in requirement catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func mustCatalog(specs map[string]map[string]ProfileSpec) *Catalog {
	c, err := NewCatalog(specs)
	if err != nil {
		panic(err)
	}
	return c
}
