package candidate

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// techCategories maps category names to the keywords recognized for them.
// Matching is case-insensitive substring matching against the raw input, so
// short keywords like "r" or "go" match generously; this mirrors how the
// categorization has always behaved and downstream display tolerates it.
var techCategories = []struct {
	name     string
	keywords []string
}{
	{"languages", []string{
		"python", "javascript", "java", "c++", "c#", "go", "rust", "php",
		"ruby", "swift", "kotlin", "typescript", "scala", "r", "matlab",
	}},
	{"frameworks", []string{
		"react", "angular", "vue", "django", "flask", "fastapi", "express",
		"spring", "laravel", "rails", "nextjs", "nuxt", "svelte", "ember",
	}},
	{"databases", []string{
		"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
		"cassandra", "elasticsearch", "dynamodb", "firestore",
	}},
	{"cloud", []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"jenkins", "gitlab", "github actions", "heroku", "vercel",
	}},
	{"tools", []string{
		"git", "jira", "figma", "photoshop", "vscode", "intellij",
		"postman", "slack", "trello", "notion", "confluence",
	}},
}

var (
	wordPattern = regexp.MustCompile(`\b\w+\b`)
	titleCaser  = cases.Title(language.English)
)

// TechCategory is one bucket of a parsed tech stack.
type TechCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// ParseTechStack buckets a free-text tech stack into languages, frameworks,
// databases, cloud, tools and "other", in that order, dropping empty buckets.
// Matched keywords are title-cased. Unmatched alphanumeric tokens of 3+
// characters land in "other".
//
// Category matching is substring-based while the "other" pass is token-based,
// so the words of a multi-word keyword ("github actions") can surface in
// "other" even though the phrase itself was categorized. Known ambiguity,
// kept as-is.
func ParseTechStack(raw string) []TechCategory {
	lower := strings.ToLower(raw)

	var parsed []TechCategory
	for _, cat := range techCategories {
		var items []string
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				items = append(items, titleCaser.String(kw))
			}
		}
		if len(items) > 0 {
			parsed = append(parsed, TechCategory{Name: cat.name, Items: items})
		}
	}

	var other []string
	for _, word := range wordPattern.FindAllString(raw, -1) {
		if len(word) <= 2 {
			continue
		}
		if isKnownKeyword(strings.ToLower(word)) {
			continue
		}
		other = append(other, titleCaser.String(word))
	}
	if len(other) > 0 {
		parsed = append(parsed, TechCategory{Name: "other", Items: other})
	}

	return parsed
}

func isKnownKeyword(word string) bool {
	for _, cat := range techCategories {
		for _, kw := range cat.keywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

// FormatTechStackDisplay renders a parsed tech stack as one labelled line per
// bucket. Input that yields no buckets is returned unchanged.
func FormatTechStackDisplay(raw string) string {
	parsed := ParseTechStack(raw)
	if len(parsed) == 0 {
		return raw
	}

	var b strings.Builder
	for i, cat := range parsed {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("**")
		b.WriteString(titleCaser.String(cat.Name))
		b.WriteString(":** ")
		b.WriteString(strings.Join(cat.Items, ", "))
	}
	return b.String()
}
