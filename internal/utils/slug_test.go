package utils

import "testing"

func TestNormalizeSubdomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme-Co", "acme-co"},
		{"  acme-co  ", "acme-co"},
		{"ACME", "acme"},
		{"acme-co", "acme-co"},
	}

	for _, tt := range tests {
		if got := NormalizeSubdomain(tt.in); got != tt.want {
			t.Errorf("NormalizeSubdomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidSubdomain(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"acme-co", true},
		{"a", true},
		{"123", true},
		{"acme-co-2", true},
		{"", false},
		{"Acme", false},
		{"acme co", false},
		{"acme.co", false},
		{"acme_co", false},
		{"café", false},
	}

	for _, tt := range tests {
		if got := ValidSubdomain(tt.slug); got != tt.valid {
			t.Errorf("ValidSubdomain(%q) = %v, want %v", tt.slug, got, tt.valid)
		}
	}
}
