package parsing

import (
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":       "Go",
	"go lang":      "Go",
	"javascript":   "JavaScript",
	"js":           "JavaScript",
	"typescript":   "TypeScript",
	"ts":           "TypeScript",
	"k8s":          "Kubernetes",
	"kubernetes":   "Kubernetes",
	"react.js":     "React",
	"reactjs":      "React",
	"vue.js":       "Vue",
	"vuejs":        "Vue",
	"node.js":      "Node.js",
	"nodejs":       "Node.js",
	"node":         "Node.js",
	"next.js":      "Next.js",
	"nextjs":       "Next.js",
	"postgres":     "PostgreSQL",
	"postgresql":   "PostgreSQL",
	"mongo":        "MongoDB",
	"mongodb":      "MongoDB",
	"gcp":          "GCP",
	"aws":          "AWS",
	"sql":          "SQL",
	"graphql":      "GraphQL",
	"html":         "HTML",
	"css":          "CSS",
	"tailwind":     "Tailwind CSS",
	"tailwindcss":  "Tailwind CSS",
	"ci/cd":        "CI/CD",
	"cicd":         "CI/CD",
	"rest":         "REST",
	"restful apis": "REST",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.Join(strings.Fields(skillName), " ")
	normalized = strings.Trim(normalized, ".,;:")

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Short all-caps values are acronyms (SQL, AWS) and stay as written
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 {
		if len(normalized) <= 4 || strings.Contains(lower, " ") {
			return normalized
		}
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// Mixed case is intentional (GitHub, PyTorch)
	if normalized != strings.ToLower(normalized) {
		return normalized
	}

	if !strings.Contains(normalized, " ") && normalized != "" {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkills normalizes every skill name and removes duplicates, keeping first-seen order
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		name := NormalizeSkillName(skill)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
