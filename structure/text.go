package structure

import (
	"strings"
	"unicode"
)

// allowedPunct is the conservative punctuation allow-list kept by text
// cleaning; everything else outside letters/digits/space is stripped.
const allowedPunct = ".,;:!?'\"()[]-/&%$#@+*=_"

// CleanText normalizes extracted text: characters outside the
// alphanumeric/punctuation allow-list are stripped, whitespace runs
// collapse to single spaces, and the result is trimmed.
func CleanText(s string) string {
	stripped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		case unicode.IsSpace(r):
			return ' '
		case strings.ContainsRune(allowedPunct, r):
			return r
		default:
			return -1
		}
	}, s)

	return strings.Join(strings.Fields(stripped), " ")
}

// extractionFailureMarkers flag text an OCR collaborator emitted in
// place of real content.
var extractionFailureMarkers = []string{
	"[extraction failed",
	"[ocr failed",
	"[ocr error",
	"[unreadable",
	"[no text",
}

// IsExtractionFailure reports whether text is an extractor's failure
// placeholder rather than document content.
func IsExtractionFailure(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range extractionFailureMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}

// countWords counts whitespace-separated words.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// splitSentences splits text on sentence-terminal punctuation and
// discards empty fragments.
func splitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			sentences = append(sentences, strings.TrimSpace(fragment))
		}
	}
	return sentences
}
