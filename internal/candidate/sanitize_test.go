package candidate

import (
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "I know Python and Go", want: "I know Python and Go"},
		{name: "markup characters stripped", in: `<b>hi</b> & "bye"`, want: "bhi/b  bye"},
		{name: "whitespace trimmed", in: "  hello  ", want: "hello"},
		{name: "quotes and semicolons removed", in: "it's fine; really", want: "its fine really"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeInput(tt.in); got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	t.Run("long input truncated to 500", func(t *testing.T) {
		got := SanitizeInput(strings.Repeat("a", 600))
		if len(got) != 500 {
			t.Errorf("len = %d, want 500", len(got))
		}
	})
}
