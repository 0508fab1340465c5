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

// repairJSON attempts to fix common JSON formatting issues from LLM
// responses before unmarshaling: keys missing their opening quote
// (`, name":` becomes `, "name":`) and trailing commas before a
// closing brace or bracket.
func repairJSON(s string) string {
	src := []rune(s)
	fixed := make([]rune, 0, len(src)+32)

	i := 0
	for i < len(src) {
		ch := src[i]

		// Copy quoted strings verbatim so punctuation inside values
		// cannot trigger a repair.
		if ch == '"' {
			fixed = append(fixed, ch)
			i++
			for i < len(src) {
				fixed = append(fixed, src[i])
				if src[i] == '\\' && i+1 < len(src) {
					fixed = append(fixed, src[i+1])
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
			continue
		}

		// Unquoted keys only appear right after { or ,
		if ch == '{' || ch == ',' {
			fixed = append(fixed, ch)
			i++

			for i < len(src) && (src[i] == ' ' || src[i] == '\n' || src[i] == '\t') {
				fixed = append(fixed, src[i])
				i++
			}

			if i < len(src) && isLetter(src[i]) {
				keyStart := i
				for i < len(src) && (isLetter(src[i]) || src[i] == '_') {
					i++
				}
				// A bare word followed by ": means the opening quote
				// was dropped. Emit the quoted key and consume the
				// stray quote so string tracking stays in sync.
				if i+1 < len(src) && src[i] == '"' && src[i+1] == ':' {
					fixed = append(fixed, '"')
					fixed = append(fixed, src[keyStart:i]...)
					fixed = append(fixed, '"', ':')
					i += 2
					continue
				}
				fixed = append(fixed, src[keyStart:i]...)
			}
			continue
		}

		// Trailing comma: drop the last emitted comma when the next
		// non-whitespace rune closes the container.
		if ch == '}' || ch == ']' {
			j := len(fixed) - 1
			for j >= 0 && (fixed[j] == ' ' || fixed[j] == '\n' || fixed[j] == '\t') {
				j--
			}
			if j >= 0 && fixed[j] == ',' {
				fixed = append(fixed[:j], fixed[j+1:]...)
			}
		}

		fixed = append(fixed, ch)
		i++
	}

	return string(fixed)
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
