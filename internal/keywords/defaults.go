package keywords

// Section types recognized by the segmenter and routed to parsers
const (
	SectionGeneral    = "general"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	// SectionOther is a recognized heading that no parser consumes
	SectionOther = "other"
)

// sectionOrder is the order section types are tried when matching a heading
var sectionOrder = []string{
	SectionExperience,
	SectionProjects,
	SectionEducation,
	SectionSkills,
	SectionSummary,
	SectionOther,
}

var defaultSections = map[string][]string{
	SectionSummary: {
		"summary", "professional summary", "profile", "professional profile", "about",
		"about me", "objective", "career objective", "overview", "introduction",
	},
	SectionExperience: {
		"experience", "work experience", "professional experience", "employment",
		"employment history", "work history", "career history", "relevant experience",
	},
	SectionProjects: {
		"projects", "project", "personal projects", "side projects", "selected projects",
		"key projects", "portfolio", "open source",
	},
	SectionEducation: {
		"education", "academic background", "academics", "qualifications",
		"education and training", "academic history",
	},
	SectionSkills: {
		"skills", "technical skills", "core skills", "key skills", "skills and tools",
		"technologies", "tech stack", "toolbox", "competencies", "core competencies",
	},
	SectionOther: {
		"certifications", "certificates", "awards", "honors", "languages", "interests",
		"hobbies", "publications", "volunteering", "volunteer experience", "references",
		"contact", "achievements", "leadership", "activities",
	},
}

var defaultActionVerbs = []string{
	"accelerated", "achieved", "analyzed", "architected", "authored", "automated",
	"boosted", "built", "championed", "collaborated", "coordinated", "created", "cut",
	"debugged", "delivered", "deployed", "designed", "developed", "directed", "drove",
	"elevated", "enabled", "engineered", "enhanced", "established", "expanded",
	"facilitated", "grew", "implemented", "improved", "increased", "integrated",
	"introduced", "launched", "led", "maintained", "managed", "mentored", "migrated",
	"modernized", "optimized", "orchestrated", "owned", "partnered", "pioneered",
	"prototyped", "redesigned", "reduced", "refactored", "resolved", "revamped",
	"saved", "scaled", "shipped", "simplified", "spearheaded", "streamlined",
	"supported", "tested", "trained", "transformed", "wrote",
}

var defaultBulletGlyphs = []string{"-", "•", "▪", "●", "*", "·", "–", "◦", "‣", "►"}

var defaultCompanyKeywords = []string{
	"inc", "llc", "ltd", "limited", "corp", "corporation", "co", "company", "gmbh",
	"plc", "group", "labs", "lab", "technologies", "solutions", "systems", "studio",
	"studios", "partners", "consulting", "agency", "bank", "university", "college",
	"institute", "foundation", "holdings", "ventures", "software", "networks",
}

var defaultRoleKeywords = []string{
	"engineer", "developer", "programmer", "architect", "manager", "lead", "intern",
	"analyst", "scientist", "consultant", "designer", "director", "head", "officer",
	"specialist", "administrator", "coordinator", "associate", "founder", "cto", "ceo",
	"vp", "principal", "staff", "senior", "junior", "sre", "devops", "researcher",
	"owner", "contractor", "freelancer",
}

var defaultDegreeKeywords = []string{
	"bachelor", "bachelors", "master", "masters", "phd", "ph.d", "doctorate", "mba",
	"bsc", "b.sc", "msc", "m.sc", "ba", "b.a", "ma", "m.a", "bs", "b.s", "ms", "m.s",
	"beng", "b.eng", "meng", "m.eng", "btech", "b.tech", "mtech", "m.tech", "associate",
	"diploma", "certificate", "degree", "hnd", "a-levels", "gcse",
}

var defaultSchoolKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
	"universidad", "universität", "conservatory", "bootcamp",
}

// defaultCasedTechnologies maps an exactly spelled token to its display name
var defaultCasedTechnologies = map[string]string{
	"Go": "Go",
}

// defaultTechnologies maps a lowercase token to its display name
var defaultTechnologies = map[string]string{
	"airflow":       "Airflow",
	"angular":       "Angular",
	"ansible":       "Ansible",
	"aws":           "AWS",
	"azure":         "Azure",
	"bigquery":      "BigQuery",
	"cassandra":     "Cassandra",
	"circleci":      "CircleCI",
	"css":           "CSS",
	"cypress":       "Cypress",
	"django":        "Django",
	"docker":        "Docker",
	"dynamodb":      "DynamoDB",
	"elasticsearch": "Elasticsearch",
	"fastapi":       "FastAPI",
	"figma":         "Figma",
	"flask":         "Flask",
	"gcp":           "GCP",
	"git":           "Git",
	"github":        "GitHub",
	"golang":        "Go",
	"graphql":       "GraphQL",
	"grpc":          "gRPC",
	"hadoop":        "Hadoop",
	"html":          "HTML",
	"java":          "Java",
	"javascript":    "JavaScript",
	"jenkins":       "Jenkins",
	"jest":          "Jest",
	"js":            "JavaScript",
	"k8s":           "Kubernetes",
	"kafka":         "Kafka",
	"kotlin":        "Kotlin",
	"kubernetes":    "Kubernetes",
	"linux":         "Linux",
	"mongodb":       "MongoDB",
	"mysql":         "MySQL",
	"nextjs":        "Next.js",
	"nginx":         "Nginx",
	"node":          "Node.js",
	"nodejs":        "Node.js",
	"numpy":         "NumPy",
	"pandas":        "pandas",
	"php":           "PHP",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"python":        "Python",
	"pytorch":       "PyTorch",
	"rabbitmq":      "RabbitMQ",
	"rails":         "Rails",
	"react":         "React",
	"reactjs":       "React",
	"redis":         "Redis",
	"redux":         "Redux",
	"ruby":          "Ruby",
	"rust":          "Rust",
	"sass":          "Sass",
	"scala":         "Scala",
	"snowflake":     "Snowflake",
	"spark":         "Spark",
	"sql":           "SQL",
	"svelte":        "Svelte",
	"swift":         "Swift",
	"tailwind":      "Tailwind CSS",
	"tensorflow":    "TensorFlow",
	"terraform":     "Terraform",
	"ts":            "TypeScript",
	"typescript":    "TypeScript",
	"vite":          "Vite",
	"vue":           "Vue",
	"vuejs":         "Vue",
	"webpack":       "webpack",
}

var defaultNoiseWords = []string{
	"summary", "profile", "present", "current", "now", "experience", "education",
	"skills", "projects", "resume", "curriculum vitae", "cv", "references",
	"available upon request", "n/a", "na", "none", "tbd", "contact", "phone", "email",
	"london", "new york", "san francisco", "seattle", "austin", "boston", "chicago",
	"berlin", "paris", "toronto", "bangalore", "bengaluru", "mumbai", "delhi",
	"singapore", "sydney", "dublin", "amsterdam", "remote", "hybrid",
}

var defaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has", "have",
	"in", "is", "it", "its", "of", "on", "or", "our", "that", "the", "their", "this",
	"to", "we", "will", "with", "you", "your", "who", "what", "can", "all", "also",
	"us", "about", "into", "other", "such", "than", "them", "they", "was", "were",
}

var defaultRewriteCues = []string{
	"reframe", "rewrite", "refresh", "revise", "rework", "tailor", "adapt",
	"customize", "align", "modernize", "update", "optimize", "enhance",
}

var defaultMonths = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}
