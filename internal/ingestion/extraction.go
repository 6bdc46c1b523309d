// Package ingestion turns uploaded or stored documents into the cleaned,
// lowercased text blob the analyzer consumes.
package ingestion

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Format identifies a supported document type.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// AllFormats lists every format the extractors handle.
var AllFormats = []Format{FormatPDF, FormatDOCX, FormatHTML, FormatText}

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var extensionFormats = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
}

var mimeFormats = map[string]Format{
	"application/pdf": FormatPDF,
	docxMIME:          FormatDOCX,
	"text/html":       FormatHTML,
	"text/plain":      FormatText,
	"text/markdown":   FormatText,
}

// Extracted is the result of a successful extraction.
type Extracted struct {
	Text   string
	Format Format
	// Pages is the page count for paginated formats, zero otherwise.
	Pages int
}

// ParseFormat maps a config or flag value onto a Format.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// DetectFormat resolves the document format from the file extension, then the
// declared MIME type, then by sniffing the content.
func DetectFormat(name, mimeType string, data []byte) (Format, error) {
	if f, ok := extensionFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return f, nil
	}
	if f, ok := formatFromMIME(mimeType); ok {
		return f, nil
	}
	if filepath.Ext(name) == "" && len(data) > 0 {
		if f, ok := formatFromMIME(http.DetectContentType(data)); ok {
			return f, nil
		}
	}

	desc := filepath.Ext(name)
	if desc == "" {
		desc = mimeType
	}
	if desc == "" {
		desc = "unknown"
	}
	return "", &InvalidInputError{Name: name, Message: "unsupported file type " + desc}
}

func formatFromMIME(mimeType string) (Format, bool) {
	if mimeType == "" {
		return "", false
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return "", false
	}
	f, ok := mimeFormats[mediaType]
	return f, ok
}

// ExtractText detects the format of data and returns its cleaned, lowercased
// text. Unsupported types fail with *InvalidInputError before any parsing; parser
// failures and blank output fail with *ExtractionError.
func ExtractText(name, mimeType string, data []byte) (*Extracted, error) {
	format, err := DetectFormat(name, mimeType, data)
	if err != nil {
		return nil, err
	}
	return ExtractFormat(name, format, data)
}

// ExtractFormat extracts data as the given format.
func ExtractFormat(name string, format Format, data []byte) (*Extracted, error) {
	var (
		raw   string
		pages int
		err   error
	)

	switch format {
	case FormatPDF:
		raw, pages, err = extractPDF(data)
	case FormatDOCX:
		raw, err = extractDOCX(data)
	case FormatHTML:
		raw, err = extractHTML(data)
	case FormatText:
		raw = string(data)
	default:
		return nil, &InvalidInputError{Name: name, Message: "unsupported format " + string(format)}
	}
	if err != nil {
		return nil, &ExtractionError{Name: name, Message: string(format) + " parse failed", Cause: err}
	}

	text := Normalize(raw)
	if text == "" {
		return nil, &ExtractionError{Name: name, Message: "document yielded no text"}
	}

	return &Extracted{Text: text, Format: format, Pages: pages}, nil
}
