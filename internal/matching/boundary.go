// Package matching counts whole-word keyword occurrences in résumé text.
//
// A boundary is enforced on a side of the keyword only if the keyword's edge
// character on that side is a word character (letter, digit or underscore);
// the neighbouring text character must then not be a word character. Keywords
// ending in punctuation such as "c++" or "c#" match when followed by anything.
package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r is a letter, digit or underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// CountOccurrences returns the number of non-overlapping whole-word occurrences of
// keyword in text. Both arguments are compared literally; callers fold case.
func CountOccurrences(text, keyword string) int {
	return scan(text, keyword, -1)
}

// ContainsWord reports whether keyword occurs in text as a whole word.
func ContainsWord(text, keyword string) bool {
	return scan(text, keyword, 1) > 0
}

// scan counts boundary-respecting occurrences, stopping once limit is reached
// (limit < 0 means no limit).
func scan(text, keyword string, limit int) int {
	if keyword == "" || len(keyword) > len(text) {
		return 0
	}

	first, _ := utf8.DecodeRuneInString(keyword)
	last, _ := utf8.DecodeLastRuneInString(keyword)
	checkLeft := isWordRune(first)
	checkRight := isWordRune(last)

	count := 0
	pos := 0
	for pos <= len(text)-len(keyword) {
		idx := strings.Index(text[pos:], keyword)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(keyword)

		if boundaryOK(text, start, end, checkLeft, checkRight) {
			count++
			if limit > 0 && count >= limit {
				break
			}
			pos = end
			continue
		}

		// Retry one rune further on, so a rejected candidate can't hide a later one.
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return count
}

func boundaryOK(text string, start, end int, checkLeft, checkRight bool) bool {
	if checkLeft && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(prev) {
			return false
		}
	}
	if checkRight && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}
