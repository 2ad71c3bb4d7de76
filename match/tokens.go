package match

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it on anything that is not a
// letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// suffixReplacements maps derivational suffixes to their base form so
// that e.g. "creation" and "create" reduce to the same stem.
var suffixReplacements = []struct{ from, to string }{
	{"ization", "ize"},
	{"ational", "ate"},
	{"ation", "ate"},
}

// stripSuffixes are removed outright, longest first.
var stripSuffixes = []string{
	"ness", "ment", "able", "ible",
	"ing", "ies",
	"ed", "es", "ly",
	"s",
}

// lightStem reduces a token to a crude stem: suffix rewrites, suffix
// stripping, then a trailing-e trim. It is not a linguistic stemmer;
// it only needs to fold common inflections onto one term for the
// cosine vectors.
func lightStem(token string) string {
	for _, r := range suffixReplacements {
		if strings.HasSuffix(token, r.from) && len(token)-len(r.from) >= 2 {
			token = token[:len(token)-len(r.from)] + r.to
			break
		}
	}

	for _, suffix := range stripSuffixes {
		if strings.HasSuffix(token, suffix) && len(token)-len(suffix) >= 3 {
			token = token[:len(token)-len(suffix)]
			break
		}
	}

	if len(token) > 4 && strings.HasSuffix(token, "e") {
		token = token[:len(token)-1]
	}

	return token
}

// stemTokens tokenizes and stems in one pass.
func stemTokens(text string) []string {
	tokens := tokenize(text)
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = lightStem(tok)
	}
	return stems
}
