//go:build ocr

// Package ocr recognizes text in photographed or scanned job postings.
//
// This package wraps the Tesseract OCR engine via gosseract and is only
// compiled with the "ocr" build tag, since it requires Tesseract to be
// installed on the system. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-jpn
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations. Close it when done to
// release engine resources.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client configured for Japanese and English, the
// languages job postings are written in. Use SetLanguage to override.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage("jpn", "eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting OCR language: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the recognition language(s), e.g. "jpn", "eng".
func (c *Client) SetLanguage(langs ...string) error {
	return c.client.SetLanguage(langs...)
}

// Recognize performs OCR on image data and returns the recognized text
// with surrounding whitespace trimmed. TIFF and BMP input is re-encoded
// as PNG first (see Normalize); PNG and JPEG pass through untouched.
func (c *Client) Recognize(imageData []byte) (string, error) {
	data, err := Normalize(imageData)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
