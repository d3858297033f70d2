package candidate

import "testing"

func TestClassifyDifficulty(t *testing.T) {
	tests := []struct {
		name      string
		question  string
		techStack string
		want      string
	}{
		{
			name:     "definition question",
			question: "What is a goroutine?",
			want:     "Beginner",
		},
		{
			name:     "implementation question",
			question: "How would you implement a retry policy around a flaky API?",
			want:     "Intermediate",
		},
		{
			name:     "architecture keyword wins",
			question: "Explain the architecture of a basic message queue",
			want:     "Advanced",
		},
		{
			name:      "senior tech stack forces advanced",
			question:  "What is a pointer?",
			techStack: "Senior Go developer, Kubernetes",
			want:      "Advanced",
		},
		{
			name:     "beginner outweighs intermediate",
			question: "Explain the basic design",
			want:     "Beginner",
		},
		{
			name:     "no keywords at all",
			question: "Tell me about your last project",
			want:     "Beginner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDifficulty(tt.question, tt.techStack); got != tt.want {
				t.Errorf("ClassifyDifficulty(%q, %q) = %q, want %q", tt.question, tt.techStack, got, tt.want)
			}
		})
	}
}
