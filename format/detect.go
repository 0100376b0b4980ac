// Package format provides input format detection for mathdoc.
package format

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// Image indicates a raster image that is read page-per-file through OCR.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".webp": true,
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".pdf":
		return PDF
	case imageExtensions[ext]:
		return Image
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading magic bytes to determine the format.
// Returns Unknown if the format cannot be determined from the bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")),
		bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}),
		bytes.HasPrefix(data, []byte("GIF87a")),
		bytes.HasPrefix(data, []byte("GIF89a")),
		bytes.HasPrefix(data, []byte("II*\x00")),
		bytes.HasPrefix(data, []byte("MM\x00*")),
		bytes.HasPrefix(data, []byte("BM")):
		return Image
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return Image
	default:
		return Unknown
	}
}

// DetectFromReader reads the first bytes of r and detects the format from them.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 16)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile detects the format of the file at path. Content wins over the
// extension; the extension is used when the content is not recognized.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	format, err := DetectFromReader(f)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if format == Unknown {
		format = Detect(path)
	}
	return format, nil
}
