package assets

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"rooted asset path", "/media/uploads/photo.png", true},
		{"rooted nested path", "/assets/2024/chart-render.jpeg", true},
		{"absolute https", "https://cdn.example.org/img/photo.png", true},
		{"absolute http", "http://files.example.org/a.gif", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"leading space", " /media/a.png", false},
		{"embedded space", "/media/my photo.png", false},
		{"embedded quote", `/media/"a".png`, false},
		{"embedded newline", "/media/a\n.png", false},
		{"backslash path", `C:\images\a.png`, false},
		{"relative path", "images/a.png", false},
		{"parent traversal", "/media/../etc/passwd", false},
		{"bare hostname URL", "https://localhost/a.png", false},
		{"placeholder image_url", "/media/image_url.png", false},
		{"placeholder bare", "/media/placeholder", false},
		{"placeholder https", "https://cdn.example.org/image.png", false},
		{"placeholder todo", "/media/TODO.jpg", false},
		{"real name containing img", "/media/imgelfield.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidURL(tt.url); got != tt.want {
				t.Errorf("ValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestSize_PNG(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 40, 25))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	d, err := Size(buf.Bytes())
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}
	if d.Width != 40 || d.Height != 25 {
		t.Errorf("Size() = %dx%d, want 40x25", d.Width, d.Height)
	}
	if d.Format != "png" {
		t.Errorf("Size() format = %q, want png", d.Format)
	}
}

func TestSize_Invalid(t *testing.T) {
	if _, err := Size([]byte("not an image")); err == nil {
		t.Error("Size() on garbage bytes should return an error")
	}
	if _, err := Size(nil); err == nil {
		t.Error("Size() on nil should return an error")
	}
}

func TestDisplayWidthCases(t *testing.T) {
	tests := []struct {
		name     string
		dims     Dimensions
		maxWidth int
		want     float64
	}{
		{"half width", Dimensions{Width: 400, Height: 300}, 800, 50},
		{"full width cap", Dimensions{Width: 1600, Height: 900}, 800, 100},
		{"tiny floor", Dimensions{Width: 10, Height: 10}, 800, 5},
		{"unknown dimensions", Dimensions{}, 800, 100},
		{"zero max width", Dimensions{Width: 400}, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.dims, tt.maxWidth); got != tt.want {
				t.Errorf("DisplayWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}
