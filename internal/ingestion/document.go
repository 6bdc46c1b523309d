package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DefaultMaxBytes caps the size of a document read by LoadDocument.
const DefaultMaxBytes int64 = 10 << 20

// DefaultAttempts is the number of download attempts for remote documents.
const DefaultAttempts = 3

// Document is a raw document ready for extraction.
type Document struct {
	Name string
	MIME string
	Data []byte
}

// Options configures LoadDocument.
type Options struct {
	MaxBytes int64
	Attempts int
	// Backoff is the base delay between attempts; attempt n waits n*Backoff.
	Backoff time.Duration
	S3      S3Options
}

// DefaultOptions returns the options used when LoadDocument is given nil.
func DefaultOptions() *Options {
	return &Options{
		MaxBytes: DefaultMaxBytes,
		Attempts: DefaultAttempts,
		Backoff:  500 * time.Millisecond,
	}
}

// IsS3Location reports whether location is an s3://bucket/key URI.
func IsS3Location(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// LoadDocument reads a document from a local path or an s3://bucket/key URI.
func LoadDocument(ctx context.Context, location string, opts *Options) (*Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if strings.TrimSpace(location) == "" {
		return nil, &InvalidInputError{Message: "document location is required"}
	}

	if IsS3Location(location) {
		bucket, key, err := ParseS3Location(location)
		if err != nil {
			return nil, err
		}
		fetcher, err := NewS3Fetcher(ctx, opts.S3)
		if err != nil {
			return nil, err
		}
		data, err := retry(ctx, opts.Attempts, opts.Backoff, func() ([]byte, error) {
			return fetcher.Fetch(ctx, bucket, key, opts.MaxBytes)
		})
		if err != nil {
			return nil, err
		}
		name := path.Base(key)
		return &Document{Name: name, MIME: mimeByExtension(name), Data: data}, nil
	}

	return loadLocal(location, opts.MaxBytes)
}

func loadLocal(filePath string, maxBytes int64) (*Document, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	data, err := readLimited(f, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	name := filepath.Base(filePath)
	return &Document{Name: name, MIME: mimeByExtension(name), Data: data}, nil
}

// readLimited reads r fully, failing once more than maxBytes are available.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, &InvalidInputError{Message: fmt.Sprintf("document exceeds %d bytes", maxBytes)}
	}
	return data, nil
}

func mimeByExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".docx" {
		return docxMIME
	}
	return mime.TypeByExtension(ext)
}

// retry runs fn up to attempts times, waiting attempt*backoff between tries.
// Invalid input is not retried.
func retry[T any](ctx context.Context, attempts int, backoff time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			return zero, err
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(i+1) * backoff):
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
