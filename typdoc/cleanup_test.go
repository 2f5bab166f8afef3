package typdoc

import "testing"

func TestCleanup(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"plain text untouched", "hello\nworld", "hello\nworld"},
		{"crlf normalized", "a\r\nb", "a\nb"},
		{"empty decorator removed", "a\n#text(size: 12pt)[]\nb", "a\nb"},
		{"nested empty decorator removed",
			"a\n#align(center)[#text(size: 12pt)[ ]]\nb", "a\nb"},
		{"dangling bracket removed", "a\n]\nb", "a\nb"},
		{"double dangling bracket removed", "a\n ]] \nb", "a\nb"},
		{"long blank run collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"double blank kept", "a\n\n\nb", "a\n\n\nb"},
		{"single blank kept", "a\n\nb", "a\n\nb"},
		{"whitespace-only lines count as blank", "a\n \t\n  \n\t\nb", "a\n\nb"},
		{"non-empty decorator kept",
			"#text(size: 12pt)[note]", "#text(size: 12pt)[note]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cleanup(tt.markup); got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.markup, got, tt.want)
			}
		})
	}
}

func TestCleanup_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"a\n\n\n\nb\n]\n#text(size: 9pt)[]\nc",
		"= Title\n\nBody text\n\n\n\n\nMore",
		"#align(center)[#text(font: \"X\")[]]\nkept",
		"a\r\n\r\n\r\n\r\nb",
	}
	for _, in := range inputs {
		once := Cleanup(in)
		twice := Cleanup(once)
		if once != twice {
			t.Errorf("Cleanup not idempotent for %q:\n once:  %q\n twice: %q", in, once, twice)
		}
	}
}

func TestCleanup_UnicodeNormalized(t *testing.T) {
	// Decomposed "e" + combining acute must come back precomposed.
	got := Cleanup("caf\u0065\u0301")
	if got != "caf\u00e9" {
		t.Errorf("Cleanup = %q, want NFC form", got)
	}
}
