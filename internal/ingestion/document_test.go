package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocument_LocalFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python and SQL"), 0644))

	doc, err := LoadDocument(context.Background(), path, nil)
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", doc.Name)
	assert.Contains(t, doc.MIME, "text/plain")
	assert.Equal(t, []byte("Python and SQL"), doc.Data)
}

func TestLoadDocument_DocxMIME(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0644))

	doc, err := LoadDocument(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, docxMIME, doc.MIME)
}

func TestLoadDocument_FileNotFound(t *testing.T) {
	doc, err := LoadDocument(context.Background(), "/nonexistent/resume.pdf", nil)

	assert.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDocument_EmptyLocation(t *testing.T) {
	_, err := LoadDocument(context.Background(), "  ", nil)

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestLoadDocument_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0644))

	opts := DefaultOptions()
	opts.MaxBytes = 32
	_, err := LoadDocument(context.Background(), path, opts)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "exceeds 32 bytes")
}

func TestLoadDocument_InvalidS3Location(t *testing.T) {
	_, err := LoadDocument(context.Background(), "s3://bucket-only", nil)

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseS3Location(t *testing.T) {
	tests := []struct {
		location string
		bucket   string
		key      string
		wantErr  bool
	}{
		{location: "s3://resumes/jane.pdf", bucket: "resumes", key: "jane.pdf"},
		{location: "s3://resumes/2024/q1/jane.docx", bucket: "resumes", key: "2024/q1/jane.docx"},
		{location: "s3://resumes", wantErr: true},
		{location: "s3:///jane.pdf", wantErr: true},
		{location: "s3://resumes/folder/", wantErr: true},
		{location: "/tmp/jane.pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			bucket, key, err := ParseS3Location(tt.location)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := retry(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUp(t *testing.T) {
	calls := 0
	_, err := retry(context.Background(), 3, time.Millisecond, func() ([]byte, error) {
		calls++
		return nil, errors.New("network down")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "network down")
}

func TestRetry_DoesNotRetryInvalidInput(t *testing.T) {
	calls := 0
	_, err := retry(context.Background(), 3, time.Millisecond, func() ([]byte, error) {
		calls++
		return nil, &InvalidInputError{Message: "too big"}
	})

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, calls)
}

func TestRetry_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retry(ctx, 3, time.Hour, func() (int, error) {
		return 0, errors.New("fail")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
