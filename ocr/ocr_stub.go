//go:build !ocr

// Package ocr recognizes text in photographed or scanned job postings.
//
// This is the stub implementation used when the "ocr" build tag is not
// set; every recognition call returns ErrOCRNotEnabled. To enable OCR,
// install Tesseract and rebuild with the tag:
//
//	go build -tags ocr
package ocr

// Client is a placeholder for the Tesseract wrapper. All operations
// return ErrOCRNotEnabled.
type Client struct{}

// New reports that OCR support was not compiled in.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op in the stub build.
func (c *Client) Close() error {
	return nil
}

// SetLanguage reports that OCR support was not compiled in.
func (c *Client) SetLanguage(langs ...string) error {
	return ErrOCRNotEnabled
}

// Recognize reports that OCR support was not compiled in.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
