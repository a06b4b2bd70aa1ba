package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	godocx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

type DocumentExtractor interface {
	ExtractText(filePath string) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// SupportedExtension reports whether a filename carries one of the
// extensions the extractor knows how to handle. Checked before any
// bytes are read.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// ExtractText converts a resume file into plain text. The extraction
// strategy is chosen from the filename extension: .pdf is read page by
// page, .docx paragraph by paragraph. Emptiness of the result is the
// caller's concern, not the extractor's.
func (e *documentExtractor) ExtractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return e.extractPDF(filePath)
	case ".docx":
		return e.extractDOCX(filePath)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filePath))
	}
}

func (e *documentExtractor) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that yields no text contributes nothing
			continue
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

func (e *documentExtractor) extractDOCX(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat DOCX: %w", err)
	}

	doc, err := godocx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*godocx.Paragraph); ok {
			paragraphs = append(paragraphs, para.String())
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// CleanText normalizes extracted text: trims every line and drops the
// blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
