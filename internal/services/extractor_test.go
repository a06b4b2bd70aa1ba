package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMinimalPDF assembles a one-page PDF with a single text object,
// computing the xref offsets as it goes.
func writeMinimalPDF(t *testing.T, dir string) string {
	t.Helper()

	content := "BT /F1 12 Tf 72 720 Td (Go developer with 3 years experience) Tj ET"
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// writeMinimalDOCX packs a two-paragraph word/document.xml into the zip
// layout Word expects.
func writeMinimalDOCX(t *testing.T, dir string) string {
	t.Helper()

	parts := []struct {
		name    string
		content string
	}{
		{
			"[Content_Types].xml",
			`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		},
		{
			"_rels/.rels",
			`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`,
		},
		{
			"word/document.xml",
			`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Priya Sharma</w:t></w:r></w:p><w:p><w:r><w:t>2 years experience, frontend only</w:t></w:r></w:p></w:body></w:document>`,
		},
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, part := range parts {
		f, err := w.Create(part.name)
		require.NoError(t, err)
		_, err = f.Write([]byte(part.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestExtractText_PDFReturnsPageText(t *testing.T) {
	extractor := NewDocumentExtractor()

	path := writeMinimalPDF(t, t.TempDir())
	text, err := extractor.ExtractText(path)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "Go developer with 3 years experience")
}

func TestExtractText_DOCXJoinsParagraphsWithNewline(t *testing.T) {
	extractor := NewDocumentExtractor()

	path := writeMinimalDOCX(t, t.TempDir())
	text, err := extractor.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma\n2 years experience, frontend only", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	extractor := NewDocumentExtractor()

	// Rejected from the extension alone; the file need not exist
	for _, name := range []string{"resume.txt", "resume.doc", "resume.png", "resume"} {
		_, err := extractor.ExtractText(name)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "file=%q", name)
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	extractor := NewDocumentExtractor()

	path := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	_, err := extractor.ExtractText(path)
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractText_CorruptDOCX(t *testing.T) {
	extractor := NewDocumentExtractor()

	path := filepath.Join(t.TempDir(), "bad.docx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0644))

	_, err := extractor.ExtractText(path)
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("resume.pdf"))
	assert.True(t, SupportedExtension("resume.PDF"))
	assert.True(t, SupportedExtension("resume.docx"))
	assert.True(t, SupportedExtension("Resume Final.DOCX"))
	assert.False(t, SupportedExtension("resume.doc"))
	assert.False(t, SupportedExtension("resume.txt"))
	assert.False(t, SupportedExtension("resume"))
}

func TestCleanText(t *testing.T) {
	in := "  Priya Sharma  \n\n\n  Frontend Developer\n   \n2 years experience\n"
	want := "Priya Sharma\nFrontend Developer\n2 years experience"
	assert.Equal(t, want, CleanText(in))

	assert.Equal(t, "", CleanText("   \n \n\t "))
}
