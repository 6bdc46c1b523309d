package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Senior</w:t></w:r><w:r><w:t xml:space="preserve"> Python Developer</w:t></w:r></w:p>
<w:p><w:r><w:t>AWS</w:t><w:tab/><w:t>Docker</w:t><w:br/><w:t>Kubernetes</w:t></w:r></w:p>
</w:body>
</w:document>`

const wordRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": wordRelsXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF assembles a one-page PDF showing text in Helvetica.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		mime     string
		data     []byte
		expected Format
	}{
		{name: "pdf extension", file: "resume.pdf", expected: FormatPDF},
		{name: "extension is case insensitive", file: "RESUME.PDF", expected: FormatPDF},
		{name: "docx extension", file: "cv.docx", expected: FormatDOCX},
		{name: "htm extension", file: "cv.htm", expected: FormatHTML},
		{name: "markdown is text", file: "cv.md", expected: FormatText},
		{name: "mime with params", file: "upload", mime: "text/plain; charset=utf-8", expected: FormatText},
		{name: "docx mime", file: "blob", mime: docxMIME, expected: FormatDOCX},
		{name: "sniffed pdf", file: "blob", data: []byte("%PDF-1.4\n..."), expected: FormatPDF},
		{name: "sniffed html", file: "blob", data: []byte("<html><body>hi</body></html>"), expected: FormatHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.file, tt.mime, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	for _, file := range []string{"resume.exe", "image.png", "sheet.xlsx"} {
		_, err := DetectFormat(file, "", []byte{0x00, 0x01})

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid, file)
		assert.Contains(t, err.Error(), "unsupported file type")
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat(" PDF ")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, f)

	_, ok = ParseFormat("rtf")
	assert.False(t, ok)
}

func TestExtractText_PlainText(t *testing.T) {
	got, err := ExtractText("resume.txt", "", []byte("Experienced in PYTHON,   Go\r\n\r\n\r\nand Docker"))
	require.NoError(t, err)

	assert.Equal(t, FormatText, got.Format)
	assert.Equal(t, "experienced in python, go\n\nand docker", got.Text)
	assert.Zero(t, got.Pages)
}

func TestExtractText_HTML(t *testing.T) {
	html := `<html><head><title>CV</title><style>.python { color: red }</style></head>
<body><script>var react = 1;</script><h1>Jane Doe</h1><p>Python</p><ul><li>Docker</li><li>AWS</li></ul></body></html>`

	got, err := ExtractText("cv.html", "", []byte(html))
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, got.Format)
	assert.Contains(t, got.Text, "jane doe")
	assert.Contains(t, got.Text, "python")
	assert.Contains(t, got.Text, "docker\naws")
	assert.NotContains(t, got.Text, "react")
	assert.NotContains(t, got.Text, "color")
}

func TestExtractText_DOCX(t *testing.T) {
	got, err := ExtractText("cv.docx", "", buildDocx(t, wordDocumentXML))
	require.NoError(t, err)

	assert.Equal(t, FormatDOCX, got.Format)
	assert.Equal(t, "senior python developer\naws docker\nkubernetes", got.Text)
}

func TestWordXMLText(t *testing.T) {
	text, err := wordXMLText(wordDocumentXML)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Python Developer\n")
	assert.Contains(t, text, "AWS Docker\nKubernetes")
}

func TestWordXMLText_Malformed(t *testing.T) {
	_, err := wordXMLText("<w:document><w:body>")
	assert.Error(t, err)
}

func TestExtractText_PDF(t *testing.T) {
	got, err := ExtractText("cv.pdf", "application/pdf", buildPDF(t, "Python Developer with AWS and Docker"))
	require.NoError(t, err)

	assert.Equal(t, FormatPDF, got.Format)
	assert.Equal(t, 1, got.Pages)
	assert.Equal(t, "python developer with aws and docker", got.Text)
}

func TestExtractText_MalformedPDF(t *testing.T) {
	_, err := ExtractText("broken.pdf", "application/pdf", []byte("%PDF-1.4 this is not really a pdf"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "broken.pdf", extractionErr.Name)
}

func TestExtractText_MalformedDOCX(t *testing.T) {
	_, err := ExtractText("broken.docx", "", []byte("not a zip archive"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Error(t, extractionErr.Unwrap())
}

func TestExtractText_BlankDocumentIsExtractionError(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty.txt":  nil,
		"blank.txt":  []byte(" \n\t\n "),
		"blank.html": []byte("<html><body><script>python()</script></body></html>"),
	} {
		_, err := ExtractText(name, "", data)

		var extractionErr *ExtractionError
		require.ErrorAs(t, err, &extractionErr, name)
		assert.Contains(t, err.Error(), "no text")
	}
}

func TestExtractText_UnsupportedIsInvalidInput(t *testing.T) {
	_, err := ExtractText("resume.rtf", "application/rtf", []byte("{\\rtf1 python}"))

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
