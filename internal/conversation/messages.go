package conversation

import (
	"fmt"

	"talentscout/internal/types"
)

// endKeywords terminate the interview from any state. Matching is a
// case-insensitive substring check, so "okay, goodbye then" ends the
// conversation just like a bare "bye".
var endKeywords = []string{
	"bye", "goodbye", "exit", "quit", "end", "finish", "done",
	"thank you", "thanks", "stop", "close", "terminate",
}

const welcomeMessage = `🎯 **Welcome to TalentScout!**

I'm your AI Hiring Assistant, here to help streamline your application process. I'll gather some basic information about you and ask a few technical questions to better understand your skills.

This should take about 5-10 minutes. Ready to get started?

👋 **Let's begin! What's your full name?**`

const (
	emailPrompt      = "Nice to meet you, %s! 📧 Could you please provide your email address?"
	emailRetryPrompt = "Please provide a valid email address (e.g., john@example.com)"
	phonePrompt      = "Great! 📱 What's your phone number?"
	experiencePrompt = "Perfect! 💼 How many years of experience do you have in your field?"
	positionPrompt   = "Excellent! 🎯 What position(s) are you interested in applying for?"
	locationPrompt   = "Awesome! 📍 What's your current location (city, state/country)?"
	techStackPrompt  = "Perfect! 💻 Now, please tell me about your tech stack. What programming languages, frameworks, databases, and tools are you proficient in?"

	firstQuestionFormat = "Great! Based on your tech stack (%s), I'll ask you a few technical questions to assess your skills.\n\n🔍 **Question 1:** %s"
	nextQuestionFormat  = "Thank you for your answer! 👍\n\n🔍 **Question %d:** %s"

	completedMessage = "The interview has been completed. Thank you! 🙏 If you have any questions about the next steps, please feel free to ask, or type 'bye' to end our conversation."
	farewellMessage  = "🙏 Thank you for using TalentScout's Hiring Assistant! Best of luck with your application. Have a great day! 👋"
	confusedMessage  = "I'm sorry, I didn't understand that. Could you please rephrase your response?"
)

// completionSummary renders the end-of-interview recap from collected data.
func completionSummary(record *types.CandidateRecord) string {
	name := record.Name
	if name == "" {
		name = "Candidate"
	}

	return fmt.Sprintf(`🎉 **Interview Completed!**

Thank you, **%s**! I've successfully gathered all the information needed for your application.

📋 **Summary of your information:**
- **Email:** %s
- **Phone:** %s
- **Experience:** %s years
- **Position:** %s
- **Location:** %s
- **Tech Stack:** %s

✅ **Next Steps:**
1. Your responses have been recorded for review
2. Our recruitment team will evaluate your technical answers
3. You'll hear back from us within 2-3 business days
4. If selected, you'll be contacted for the next round

Thank you for your time and interest in TalentScout! 🚀

*Type 'bye' to end our conversation.*`,
		name, record.Email, record.Phone, record.Experience,
		record.Position, record.Location, record.TechStack)
}

// fallbackQuestions is the question set used when no AI provider is wired in.
func fallbackQuestions(techStack string) []string {
	return []string{
		fmt.Sprintf("Can you explain your experience with %s?", techStack),
		fmt.Sprintf("What projects have you worked on using %s?", techStack),
		fmt.Sprintf("What are some best practices you follow when working with %s?", techStack),
	}
}

// genericQuestion covers the case where the provider answered but no
// parseable questions came back.
func genericQuestion(techStack string) string {
	return fmt.Sprintf("Tell me about your experience with %s", techStack)
}
