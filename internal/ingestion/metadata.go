package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// NewMetadata describes a document and its extracted text, stamped with the current time.
func NewMetadata(doc *Document, extracted *Extracted) *types.DocumentMetadata {
	meta := &types.DocumentMetadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if doc != nil {
		meta.Source = doc.Name
		meta.Bytes = len(doc.Data)
		meta.Hash = computeHash(doc.Data)
	}
	if extracted != nil {
		meta.Format = string(extracted.Format)
		meta.Pages = extracted.Pages
		meta.Chars = utf8.RuneCountInString(extracted.Text)
	}
	return meta
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
