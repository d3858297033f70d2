// Package export renders candidate records for humans and downstream
// systems: the interview summary, JSON/CSV export and heuristic scoring.
package export

import (
	"fmt"
	"strings"
	"time"

	"talentscout/internal/types"
)

const answerPreviewLength = 100

// GenerateSummary renders the fixed-template candidate summary: personal
// fields, professional fields, then technical answers truncated to 100
// characters in encounter order.
func GenerateSummary(record types.CandidateRecord) string {
	var b strings.Builder

	b.WriteString("📋 **CANDIDATE SUMMARY**\n")
	b.WriteString(fmt.Sprintf("Generated on: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString("\n")

	b.WriteString("**📝 Personal Information:**\n")
	b.WriteString(fmt.Sprintf("• Name: %s\n", orNA(record.Name)))
	b.WriteString(fmt.Sprintf("• Email: %s\n", orNA(record.Email)))
	b.WriteString(fmt.Sprintf("• Phone: %s\n", orNA(record.Phone)))
	b.WriteString(fmt.Sprintf("• Location: %s\n", orNA(record.Location)))
	b.WriteString("\n")

	b.WriteString("**💼 Professional Information:**\n")
	b.WriteString(fmt.Sprintf("• Experience: %s years\n", orNA(record.Experience)))
	b.WriteString(fmt.Sprintf("• Position Interest: %s\n", orNA(record.Position)))
	b.WriteString(fmt.Sprintf("• Tech Stack: %s\n", orNA(record.TechStack)))
	b.WriteString("\n")

	b.WriteString("**🔍 Technical Assessment:**\n")
	if len(record.Answers) == 0 {
		b.WriteString("• No technical answers recorded")
	} else {
		for i, qa := range record.Answers {
			line := fmt.Sprintf("• Answer %d: %s", i+1, truncate(qa.Answer, answerPreviewLength))
			b.WriteString(line)
			if i < len(record.Answers)-1 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
