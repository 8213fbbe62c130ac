package taxonomy

// vocabularies holds the curated term lists per category. Entries are
// lowercase canonical phrases. Terms may overlap in meaning across categories
// (e.g. "aws certified" contains "aws"); that ambiguity is deliberate, since
// each category is scored independently.
var vocabularies = map[Category][]string{
	TechnicalSkills: {
		// Cloud & Infrastructure
		"aws", "azure", "gcp", "google cloud", "amazon web services", "cloud computing",
		"ec2", "s3", "lambda", "rds", "vpc", "iam", "cloudformation", "cloudwatch",
		"terraform", "ansible", "puppet", "chef", "infrastructure as code", "iac",
		// Containers & Orchestration
		"docker", "kubernetes", "k8s", "containers", "ecs", "eks", "fargate",
		"openshift", "helm", "container orchestration",
		// CI/CD & DevOps
		"ci/cd", "cicd", "jenkins", "github actions", "gitlab ci", "circleci",
		"devops", "devsecops", "continuous integration", "continuous delivery",
		"continuous deployment", "argocd", "spinnaker",
		// Programming Languages
		"python", "javascript", "typescript", "java", "c#", "c++", "go", "golang",
		"rust", "ruby", "php", "swift", "kotlin", "scala", "r", "matlab",
		"bash", "shell scripting", "powershell",
		// Web & Frontend
		"react", "reactjs", "react.js", "angular", "vue", "vuejs", "vue.js",
		"next.js", "nextjs", "node.js", "nodejs", "express", "html", "css",
		"tailwind", "bootstrap", "sass", "webpack", "vite",
		// Backend & APIs
		"rest", "restful", "graphql", "api", "apis", "microservices",
		"serverless", "flask", "django", "spring boot", "fastapi",
		// Data & Databases
		"sql", "nosql", "postgresql", "mysql", "mongodb", "dynamodb", "redis",
		"elasticsearch", "cassandra", "oracle", "database", "data modeling",
		"etl", "data pipeline", "data warehouse", "redshift", "bigquery",
		"snowflake", "apache spark", "kafka", "airflow",
		// AI & ML
		"machine learning", "deep learning", "artificial intelligence", "ai", "ml",
		"nlp", "natural language processing", "computer vision", "tensorflow",
		"pytorch", "scikit-learn", "llm", "large language model", "generative ai",
		// Security
		"security", "cybersecurity", "encryption", "oauth", "sso", "identity",
		"access management", "zero trust", "penetration testing", "siem",
		"compliance", "gdpr", "hipaa", "soc2", "soc 2",
		// Monitoring & Observability
		"monitoring", "observability", "logging", "prometheus", "grafana",
		"datadog", "splunk", "new relic", "elk stack", "cloudtrail",
		// Networking
		"networking", "dns", "tcp/ip", "http", "https", "load balancing",
		"cdn", "cloudfront", "route 53", "vpn", "firewall",
		// Version Control
		"git", "github", "gitlab", "bitbucket", "version control",
		// Operating Systems
		"linux", "windows server", "unix", "macos",
		// Methodologies
		"agile", "scrum", "kanban", "waterfall", "sdlc", "lean",
		"sprint", "jira", "confluence",
		// Testing
		"testing", "unit testing", "integration testing", "test automation",
		"selenium", "cypress", "jest", "pytest", "qa", "quality assurance",
	},
	SoftSkills: {
		"communication", "leadership", "teamwork", "collaboration", "problem solving",
		"problem-solving", "critical thinking", "analytical", "attention to detail",
		"time management", "project management", "stakeholder management",
		"mentoring", "coaching", "presentation", "public speaking",
		"negotiation", "conflict resolution", "decision making", "decision-making",
		"adaptability", "flexibility", "creativity", "innovation",
		"strategic thinking", "strategic planning", "customer facing",
		"cross-functional", "cross functional", "self-motivated", "self-starter",
		"results-driven", "results driven", "detail-oriented", "detail oriented",
		"fast-paced", "multitasking", "prioritization", "organizational",
		"interpersonal", "written communication", "verbal communication",
		"emotional intelligence", "relationship building",
	},
	Certifications: {
		// AWS
		"aws certified", "solutions architect", "cloud practitioner",
		"developer associate", "sysops administrator", "devops engineer",
		"data analytics", "database specialty", "security specialty",
		"machine learning specialty", "advanced networking",
		// Azure
		"azure certified", "az-900", "az-104", "az-305", "az-400",
		"azure fundamentals", "azure administrator", "azure solutions architect",
		// GCP
		"google cloud certified", "professional cloud architect",
		"associate cloud engineer", "professional data engineer",
		// Other
		"pmp", "prince2", "itil", "comptia", "cissp", "cism", "cisa",
		"ccna", "ccnp", "certified kubernetes", "cka", "ckad",
		"scrum master", "csm", "safe", "togaf",
	},
	Education: {
		"bachelor", "master", "mba", "phd", "doctorate", "degree",
		"computer science", "information technology", "engineering",
		"mathematics", "statistics", "data science", "business administration",
		"bsc", "msc", "b.s.", "m.s.", "b.a.", "m.a.",
	},
	ActionVerbs: {
		"led", "managed", "developed", "designed", "implemented", "built",
		"created", "launched", "delivered", "improved", "optimized", "reduced",
		"increased", "automated", "migrated", "deployed", "architected",
		"configured", "established", "spearheaded", "orchestrated", "streamlined",
		"transformed", "mentored", "coordinated", "analyzed", "evaluated",
		"resolved", "maintained", "supported", "collaborated", "contributed",
	},
}
