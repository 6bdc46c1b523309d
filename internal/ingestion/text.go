package ingestion

import (
	"regexp"
	"strings"
)

var (
	inlineSpaceRe  = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	excessBlanksRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, runs of inline whitespace collapse to one space,
// lines are trimmed and at most one blank line is kept between blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	result := strings.Join(lines, "\n")

	// 3. Remove excessive blank lines (max 2 consecutive newlines)
	result = excessBlanksRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	return strings.TrimSpace(inlineSpaceRe.ReplaceAllString(line, " "))
}

// Normalize cleans content and folds it to lowercase, producing the text blob
// handed to the analyzer.
func Normalize(content string) string {
	return strings.ToLower(CleanText(content))
}
