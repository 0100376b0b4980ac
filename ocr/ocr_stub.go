//go:build !ocr

// Package ocr turns scanned page images into positioned text fragments.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// The Tesseract client returns ErrOCRNotEnabled; ImageSource still works
// with any other Recognizer.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeWords returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, error) {
	return nil, ErrOCRNotEnabled
}
