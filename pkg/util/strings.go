package util

import "unicode/utf8"

// MaxLogBodySize is the default maximum body size for logging (4KB).
const MaxLogBodySize = 4 * 1024

// TruncateBody truncates data to at most maxSize bytes, appending
// "...(truncated)" if truncated. The cut never splits a UTF-8 sequence.
// If maxSize <= 0, uses MaxLogBodySize.
func TruncateBody(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogBodySize
	}
	if len(data) <= maxSize {
		return data
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return data[:cut] + "...(truncated)"
}
