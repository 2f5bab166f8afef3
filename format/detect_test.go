package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Modern, "Modern"},
		{Legacy, "Legacy"},
		{Plain, "Plain"},
		{HTML, "HTML"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Modern, ".typ"},
		{Legacy, ".typ"},
		{Plain, ".txt"},
		{HTML, ".html"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.typ", Legacy},
		{"document.TYP", Legacy},
		{"document.txt", Plain},
		{"document.html", HTML},
		{"document.HTML", HTML},
		{"document.htm", HTML},
		{"document.pdf", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/file.typ", Legacy},
		{"/path/to/file.html", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Format
	}{
		{
			name:    "marker token",
			content: "/*DOC:eyJmb250U2l6ZSI6MTF9*/\n\n= Title",
			want:    Modern,
		},
		{
			name:    "table marker mid-document",
			content: "Some text\n\n/*TABLE:e30=*/\n#table(\n  columns: 2,\n)",
			want:    Modern,
		},
		{
			name:    "bare marker token only",
			content: "Answer the question below.\n\n/*ANSWER*/\nModel answer.",
			want:    Modern,
		},
		{
			name:    "bare cover end marker",
			content: "/*COVER_END*/",
			want:    Modern,
		},
		{
			name:    "stray comment is not a marker",
			content: "/* just a note */\nSome prose.",
			want:    Plain,
		},
		{
			name:    "legacy heading",
			content: "= Introduction\n\nBody text.",
			want:    Legacy,
		},
		{
			name:    "legacy figure",
			content: "Intro\n\n#figure(image(\"a.png\"), caption: [A])",
			want:    Legacy,
		},
		{
			name:    "legacy math",
			content: "$ x^2 + 1 $",
			want:    Legacy,
		},
		{
			name:    "legacy code fence",
			content: "```go\nfmt.Println(1)\n```",
			want:    Legacy,
		},
		{
			name:    "plain prose",
			content: "Just a paragraph of text.\n\nAnother one.",
			want:    Plain,
		},
		{
			name:    "prose with equals sign",
			content: "a = b is an equation, not a heading",
			want:    Plain,
		},
		{
			name:    "html with doctype",
			content: "<!DOCTYPE html>\n<html><body><p>Hi</p></body></html>",
			want:    HTML,
		},
		{
			name:    "html without doctype",
			content: "<html><head></head><body></body></html>",
			want:    HTML,
		},
		{
			name:    "empty",
			content: "",
			want:    Plain,
		},
		{
			name:    "whitespace only",
			content: "  \n\t\n",
			want:    Plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromContent(tt.content); got != tt.want {
				t.Errorf("DetectFromContent() = %v, want %v", got, tt.want)
			}
		})
	}
}
