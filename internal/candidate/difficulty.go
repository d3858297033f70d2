package candidate

import "strings"

// Keyword buckets for heuristic difficulty classification. The thresholds
// below are kept exactly as shipped for compatibility with recorded results.
var (
	beginnerKeywords = []string{
		"what is", "define", "explain", "basic", "introduction", "simple",
	}
	intermediateKeywords = []string{
		"how would you", "implement", "design", "optimize", "compare",
		"difference between", "best practices",
	}
	advancedKeywords = []string{
		"architecture", "scalability", "performance", "security", "complex",
		"enterprise", "microservices", "system design",
	}
)

// ClassifyDifficulty labels a technical question Beginner, Intermediate or
// Advanced by keyword counting. Any advanced keyword, or "senior" anywhere in
// the tech stack text, forces Advanced.
func ClassifyDifficulty(question, techStack string) string {
	qLower := strings.ToLower(question)

	beginner := countMatches(qLower, beginnerKeywords)
	intermediate := countMatches(qLower, intermediateKeywords)
	advanced := countMatches(qLower, advancedKeywords)

	switch {
	case advanced > 0 || strings.Contains(strings.ToLower(techStack), "senior"):
		return "Advanced"
	case intermediate > beginner:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

func countMatches(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
