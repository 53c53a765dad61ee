package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"John Doe", "John Doe"},
		{"  John Doe  ", "John Doe"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
		{"lowercase name", "lowercase name"},
		{"<b>John</b> Doe", "John Doe"},
		{"O'Brien & Sons", "O'Brien & Sons"},
		{"<script>alert('x')</script>Jane", "Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+15551234567", "+15551234567"},
		{"  +15551234567  ", "+15551234567"},
		{"555-123-4567", "555-123-4567"}, // separators kept as typed
		{"", ""},
		{"   ", ""},
		{"<i>+1555</i>", "+1555"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Phone(tt.input)
			if got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"search term", "search term"},
		{"  trimmed  ", "trimmed"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE", "UPPERCASE"}, // preserves case
		{"<img src=x onerror=alert(1)>query", "query"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Search(tt.input)
			if got != tt.want {
				t.Errorf("Search(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
