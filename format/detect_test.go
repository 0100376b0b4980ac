package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{Image, "Image"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"apuntes.pdf", PDF},
		{"apuntes.PDF", PDF},
		{"scan.png", Image},
		{"scan.JPG", Image},
		{"scan.jpeg", Image},
		{"scan.tif", Image},
		{"scan.TIFF", Image},
		{"scan.bmp", Image},
		{"scan.webp", Image},
		{"scan.gif", Image},
		{"notes.txt", Unknown},
		{"notes", Unknown},
		{"", Unknown},
		{"/path/to/file.pdf", PDF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"PDF", []byte("%PDF-1.4"), PDF},
		{"PNG", []byte("\x89PNG\r\n\x1a\n\x00\x00"), Image},
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0}, Image},
		{"GIF", []byte("GIF89a"), Image},
		{"TIFF little endian", []byte("II*\x00\x08\x00"), Image},
		{"TIFF big endian", []byte("MM\x00*\x00\x00"), Image},
		{"BMP", []byte("BM\x00\x00"), Image},
		{"WEBP", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), Image},
		{"RIFF without WEBP", []byte("RIFF\x00\x00\x00\x00WAVE"), Unknown},
		{"empty", []byte{}, Unknown},
		{"text", []byte("Hello, World!"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_Short(t *testing.T) {
	format, err := DetectFromReader(bytes.NewReader([]byte("%PDF")))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", format)
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	// Content wins over a misleading extension
	misnamed := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(misnamed, []byte("%PDF-1.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := DetectFile(misnamed); err != nil || got != PDF {
		t.Errorf("DetectFile(misnamed) = %v, %v; want PDF", got, err)
	}

	// Unrecognized content falls back to the extension
	plain := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(plain, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := DetectFile(plain); err != nil || got != PDF {
		t.Errorf("DetectFile(plain) = %v, %v; want PDF", got, err)
	}

	if _, err := DetectFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
