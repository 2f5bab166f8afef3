package textenc

import (
	"io"
	"strings"
	"testing"
)

func TestNewReader_UTF8Passthrough(t *testing.T) {
	in := "héllo wörld"
	r, err := NewReader(strings.NewReader(in), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(out) != in {
		t.Errorf("got %q, want %q", out, in)
	}
}

func TestNewReader_Windows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in windows-1252.
	in := []byte{'s', 'a', 'y', ' ', 0x93, 'h', 'i', 0x94}
	r, err := NewReader(strings.NewReader(string(in)), "text/html; charset=windows-1252")
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if want := "say “hi”"; string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		data    []byte
		want    string
		wantErr bool
	}{
		{
			name:    "latin-1 e acute",
			charset: "iso-8859-1",
			data:    []byte{'c', 'a', 'f', 0xE9},
			want:    "café",
		},
		{
			name:    "windows-1252 dash",
			charset: "windows-1252",
			data:    []byte{'a', 0x96, 'b'},
			want:    "a–b",
		},
		{
			name:    "unknown charset",
			charset: "no-such-charset",
			data:    []byte("x"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.charset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	name, certain := Detect([]byte("plain ascii"), "text/html; charset=utf-8")
	if name != "utf-8" {
		t.Errorf("Detect() name = %q, want utf-8", name)
	}
	if !certain {
		t.Error("Detect() with explicit header should be certain")
	}
}
