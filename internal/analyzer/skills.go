package analyzer

import "strings"

// skillVocabulary is the fixed set of skill names recognized in resume text.
// Output order of ExtractSkills follows this order so repeated runs over the
// same text produce identical skill lists.
var skillVocabulary = []string{
	"Python", "Java", "C++", "JavaScript", "SQL", "Data Structures",
	"Algorithms", "Git", "REST APIs", "Cloud Computing", "Docker",
	"Kubernetes", "Machine Learning", "Deep Learning",
	"Data Visualization", "Pandas", "NumPy", "Scikit-learn",
	"TensorFlow", "PyTorch", "Big Data", "Hadoop", "Spark", "Linux",
	"CI/CD", "Jenkins", "Terraform", "AWS", "Azure", "Google Cloud",
	"Bash", "Monitoring", "Prometheus", "Grafana", "Network Security",
	"Penetration Testing", "Ethical Hacking", "Firewalls", "SIEM",
	"SOC Operations", "Encryption", "Threat Intelligence",
	"Incident Response", "Kali Linux", "Metasploit", "Wireshark",
	"CISSP", "Serverless Computing", "Networking", "React.js",
	"Node.js", "Django", "Flask", "MongoDB", "GraphQL", "HTML", "CSS",
	"TypeScript", "SASS", "Webpack", "UI/UX Design", "Responsive Design",
	"Cross-Browser Testing", "Express.js", "Spring Boot", "Ruby on Rails",
	"Redis", "Microservices", "Keras", "Computer Vision", "NLP",
	"Data Engineering", "MLOps", "MySQL", "PostgreSQL", "Oracle DB",
	"Database Optimization", "Indexing", "Backup & Recovery",
	"Data Security", "ETL Pipelines", "Windows", "Troubleshooting",
	"Technical Support", "Active Directory", "Help Desk", "VPN",
	"Remote Desktop", "Cloud Support", "Excel", "Tableau", "Power BI",
	"Business Intelligence", "Stakeholder Communication",
	"Process Improvement", "Project Management",
}

// skillTaxonomy rewrites matched abbreviations to their canonical long form.
var skillTaxonomy = map[string]string{
	"sql":     "Structured Query Language",
	"nlp":     "Natural Language Processing",
	"css":     "Cascading Style Sheet",
	"dl":      "Deep Learning",
	"ml":      "Machine Learning",
	"js":      "JavaScript",
	"aws":     "Amazon Web Services",
	"eda":     "Exploratory Data Analysis",
	"sass":    "Syntactically Awesome Style Sheets",
	"ai":      "Artificial Intelligence",
	"tf":      "TensorFlow",
	"react":   "ReactJS",
	"go":      "Golang",
	"rb":      "Ruby",
	"c++":     "CPP",
	"ts":      "TypeScript",
	"node":    "Node.js",
	"vue":     "Vue.js",
	"express": "Express.js",
	"c#":      "C-Sharp",
	"azure":   "Microsoft Azure",
}

// ExtractSkills matches the fixed vocabulary against the text (case-insensitive
// substring match), expands abbreviations via the taxonomy, and returns the
// deduplicated canonical skill names in vocabulary order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	skills := make([]string, 0, 16)
	seen := make(map[string]struct{})
	for _, term := range skillVocabulary {
		if !strings.Contains(lower, strings.ToLower(term)) {
			continue
		}
		canonical := term
		if expanded, ok := skillTaxonomy[strings.ToLower(term)]; ok {
			canonical = expanded
		}
		key := strings.ToLower(canonical)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, canonical)
	}
	return skills
}
