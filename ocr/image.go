package ocr

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	// Decoders for the page image formats ImageSource accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/mathdoc/reader"
	"github.com/tsawler/mathdoc/text"
)

// Word is one recognized word with its bounding box in image pixels.
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// Recognizer finds words in an encoded page image. *Client implements it.
type Recognizer interface {
	RecognizeWords(imageData []byte) ([]Word, error)
}

// DefaultDPI is the scan resolution assumed when converting pixels to points.
const DefaultDPI = 300

// ImageConfig controls how recognized words become fragments.
type ImageConfig struct {
	// DPI of the scanned images. Pixel geometry is scaled by 72/DPI so that
	// the layout tolerances, which are expressed in points, apply unchanged.
	DPI float64

	// MinConfidence drops words recognized with a lower confidence (0-100).
	MinConfidence float64
}

// DefaultImageConfig returns the default image configuration.
func DefaultImageConfig() ImageConfig {
	return ImageConfig{DPI: DefaultDPI}
}

// ImageSource is a reader.Source with one page per image file.
type ImageSource struct {
	paths      []string
	recognizer Recognizer
	config     ImageConfig
}

// Ensure ImageSource implements reader.Source
var _ reader.Source = (*ImageSource)(nil)

// NewImageSource creates a source over the given image files, in order.
func NewImageSource(recognizer Recognizer, paths ...string) *ImageSource {
	return &ImageSource{
		paths:      append([]string(nil), paths...),
		recognizer: recognizer,
		config:     DefaultImageConfig(),
	}
}

// WithConfig replaces the image configuration.
func (s *ImageSource) WithConfig(config ImageConfig) *ImageSource {
	if config.DPI <= 0 {
		config.DPI = DefaultDPI
	}
	s.config = config
	return s
}

// PageCount returns the number of image files.
func (s *ImageSource) PageCount() int {
	return len(s.paths)
}

// ExtractFragments recognizes the words of one image. Every word becomes a
// fragment whose font size is its box height.
func (s *ImageSource) ExtractFragments(pageIndex int) (reader.Page, error) {
	if pageIndex < 0 || pageIndex >= len(s.paths) {
		return reader.Page{}, fmt.Errorf("%w: %d (0-%d)", reader.ErrPageOutOfRange, pageIndex, len(s.paths)-1)
	}
	path := s.paths[pageIndex]

	data, err := os.ReadFile(path)
	if err != nil {
		return reader.Page{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return reader.Page{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	words, err := s.recognizer.RecognizeWords(data)
	if err != nil {
		return reader.Page{}, fmt.Errorf("page %d: %w", pageIndex, err)
	}

	scale := 72 / s.config.DPI
	page := reader.Page{
		Index:  pageIndex,
		Width:  float64(cfg.Width) * scale,
		Height: float64(cfg.Height) * scale,
	}
	for _, w := range words {
		txt := strings.TrimSpace(w.Text)
		if txt == "" || w.Confidence < s.config.MinConfidence {
			continue
		}
		box := w.Box.Canon()
		page.Fragments = append(page.Fragments, text.TextFragment{
			Text:       txt,
			X:          float64(box.Min.X) * scale,
			Y:          float64(box.Min.Y) * scale,
			Width:      float64(box.Dx()) * scale,
			Height:     float64(box.Dy()) * scale,
			FontSize:   float64(box.Dy()) * scale,
			PageWidth:  page.Width,
			PageHeight: page.Height,
		})
	}
	return page, nil
}

// Close releases the recognizer if it holds resources.
func (s *ImageSource) Close() error {
	if c, ok := s.recognizer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
