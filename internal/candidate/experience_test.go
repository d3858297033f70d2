package candidate

import "testing"

func TestExtractYearsOfExperience(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{name: "years unit", text: "I have 5 years of experience", want: "5", wantFound: true},
		{name: "yrs unit", text: "about 3 yrs in backend work", want: "3", wantFound: true},
		{name: "fractional years", text: "2.5 years doing data pipelines", want: "2.5", wantFound: true},
		{name: "plus suffix", text: "10+ years", want: "10", wantFound: true},
		{name: "standalone number", text: "roughly 7, give or take", want: "7", wantFound: true},
		{name: "spelled out", text: "five years", wantFound: false},
		{name: "number out of range", text: "employee 12345", wantFound: false},
		{name: "large number then valid", text: "joined in 1999 after 4 happy semesters", want: "4", wantFound: true},
		{name: "no numerals", text: "quite a while now", wantFound: false},
		{name: "empty", text: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractYearsOfExperience(tt.text)
			if found != tt.wantFound {
				t.Fatalf("ExtractYearsOfExperience(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("ExtractYearsOfExperience(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
