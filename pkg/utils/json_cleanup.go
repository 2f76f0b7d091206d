package utils

import "strings"

// CleanJSONResponse strips markdown fences and any prose around the first
// JSON object or array in a model response.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatching(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatching(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatching returns the index of the delimiter closing the one at start,
// skipping string literals, or -1.
func findMatching(s string, start int, open, closing byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
