// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import "strings"

// repairJSON attempts to fix common JSON formatting issues in LLM
// responses: missing opening quotes before object keys and trailing
// commas before a closing bracket or brace.
func repairJSON(s string) string {
	s = dropTrailingCommas(s)
	return quoteBareKeys(s)
}

// dropTrailingCommas removes a comma that directly precedes ] or }.
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == ',' {
			j := i + 1
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\n' || runes[j] == '\t') {
				j++
			}
			if j < len(runes) && (runes[j] == ']' || runes[j] == '}') {
				continue // skip the comma
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// quoteBareKeys inserts the missing opening quote in patterns like
// `, topics": [...]` which some models emit.
func quoteBareKeys(s string) string {
	runes := []rune(s)
	fixed := make([]rune, 0, len(runes)+16)

	i := 0
	for i < len(runes) {
		ch := runes[i]
		fixed = append(fixed, ch)
		i++

		if ch != '{' && ch != ',' {
			continue
		}

		// Skip whitespace after { or ,
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\n' || runes[i] == '\t') {
			fixed = append(fixed, runes[i])
			i++
		}

		if i >= len(runes) || runes[i] == '"' || !isLetter(runes[i]) {
			continue
		}

		// Collect what looks like a bare key.
		keyStart := i
		for i < len(runes) && (isLetter(runes[i]) || runes[i] == '_') {
			i++
		}

		// A bare key followed by ": is missing its opening quote.
		if i+1 < len(runes) && runes[i] == '"' && runes[i+1] == ':' {
			fixed = append(fixed, '"')
		}
		fixed = append(fixed, runes[keyStart:i]...)
	}

	return string(fixed)
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
