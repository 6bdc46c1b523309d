package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDocument_Stdout(t *testing.T) {
	path := writeFixture(t, "resume.html", "<html><body><h1>Jane  Doe</h1><p>Go and   Kubernetes</p><script>var x;</script></body></html>")

	var out bytes.Buffer
	err := extractDocument(context.Background(), path, nil, "", &out)
	require.NoError(t, err)

	assert.Equal(t, "jane doe\ngo and kubernetes\n", out.String())
}

func TestExtractDocument_OutFile(t *testing.T) {
	path := writeFixture(t, "resume.txt", "Python\r\n\r\n\r\n\r\nSQL")
	outPath := filepath.Join(t.TempDir(), "resume.out.txt")

	var stdout bytes.Buffer
	err := extractDocument(context.Background(), path, nil, outPath, &stdout)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "python\n\nsql\n", string(data))
	assert.Contains(t, stdout.String(), "from resume.txt (text)")
}

func TestExtractDocument_Blank(t *testing.T) {
	path := writeFixture(t, "blank.html", "<html><body><script>only()</script></body></html>")

	err := extractDocument(context.Background(), path, nil, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not extract text")
}
