package candidate

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain address", email: "john@example.com", want: true},
		{name: "subdomain", email: "john.doe@mail.example.co.uk", want: true},
		{name: "plus tag", email: "john+jobs@example.io", want: true},
		{name: "missing at sign", email: "john.example.com", want: false},
		{name: "missing tld", email: "john@example", want: false},
		{name: "single letter tld", email: "john@example.c", want: false},
		{name: "spaces", email: "john doe@example.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "us format with punctuation", phone: "(123) 456-7890", want: true},
		{name: "plain ten digits", phone: "1234567890", want: true},
		{name: "international with plus", phone: "+49 151 12345678", want: true},
		{name: "fifteen digits", phone: "123456789012345", want: true},
		{name: "too short", phone: "12345", want: false},
		{name: "sixteen digits", phone: "1234567890123456", want: false},
		{name: "letters only", phone: "call me maybe", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.want {
				t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
