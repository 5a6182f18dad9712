package textsource

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

var ErrNoDocumentBody = errors.New("docx: word/document.xml not found")

// DocxText extracts the text of a .docx document, headers and footers
// included.
func DocxText(data []byte) (string, error) {
	if err := checkPackage(data); err != nil {
		return "", err
	}
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("docx: convert: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoDocumentBody
	}
	return text, nil
}

// checkPackage rejects archives docconv cannot read: it needs both the
// content-type manifest and the main document part.
func checkPackage(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("docx: open archive: %w", err)
	}
	var manifest, body bool
	for _, f := range zr.File {
		switch f.Name {
		case "[Content_Types].xml":
			manifest = true
		case "word/document.xml":
			body = true
		}
	}
	if !manifest || !body {
		return ErrNoDocumentBody
	}
	return nil
}
