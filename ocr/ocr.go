//go:build ocr

// Package ocr turns scanned page images into positioned text fragments.
//
// Word recognition wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-spa
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for word-level recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be given as a "+" separated string (e.g., "spa+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeWords performs OCR on encoded image data (PNG, TIFF, JPEG, etc.)
// and returns one Word per recognized word with its pixel bounding box.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{
			Text:       b.Word,
			Box:        b.Box,
			Confidence: b.Confidence,
		})
	}
	return words, nil
}
