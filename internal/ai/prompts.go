package ai

// NotFoundSentinel is the token the extraction prompt instructs the model to
// return when the requested field is absent.
const NotFoundSentinel = "NOT_FOUND"

// DefaultExtractionPrompt is the template for field extraction. The verbs are
// deliberately narrow: the model must return the value alone so the response
// can be used without further parsing. Placeholders: field, text, field.
const DefaultExtractionPrompt = `Extract the %s from the following text. Return only the extracted value, nothing else.
If the information is not found, return 'NOT_FOUND'.

Text: %s

Field to extract: %s

Examples:
- For name: "Hi, I'm John Doe" -> "John Doe"
- For email: "My email is john@example.com" -> "john@example.com"
- For experience: "I have 5 years of experience" -> "5"
- For tech stack: "I know Python, React, and MongoDB" -> "Python, React, MongoDB"`

// DefaultQuestionPrompt is the template for technical question generation.
// Each question must come back on its own line prefixed with "Q:" so the
// parser can pick them out regardless of any surrounding prose.
// Placeholders: question count, tech stack.
const DefaultQuestionPrompt = `Generate %d technical questions for a candidate based on their tech stack.
The questions should be relevant, practical, and assess different aspects of their knowledge.

Tech Stack: %s

Requirements:
- Questions should be clear and specific
- Cover different difficulty levels (basic to intermediate)
- Focus on practical application, not just theory
- Each question should be on a new line starting with "Q:"

Example format:
Q: Can you explain the difference between let, const, and var in JavaScript?
Q: How would you handle state management in a large React application?`

// resolvePrompt prefers a configured override over the built-in default.
func resolvePrompt(fromConfig, fromDefault string) string {
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
