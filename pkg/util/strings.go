package util

import (
	"strings"

	"github.com/pkg/errors"
)

// ASCIIWhitespace is the set of characters treated as whitespace by the trim and blank helpers.
// Non-ASCII bytes are never whitespace.
const ASCIIWhitespace = " \t\n\v\f\r"

// IsASCIISpace returns true if the byte is one of the ASCIIWhitespace characters
func IsASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimLeft removes the leading run of ASCII whitespace
func TrimLeft(text string) string {
	i := 0
	for i < len(text) && IsASCIISpace(text[i]) {
		i++
	}
	return text[i:]
}

// TrimRight removes the trailing run of ASCII whitespace
func TrimRight(text string) string {
	i := len(text)
	for i > 0 && IsASCIISpace(text[i-1]) {
		i--
	}
	return text[:i]
}

// Trim removes leading and trailing ASCII whitespace, interior characters are left untouched
func Trim(text string) string {
	return TrimRight(TrimLeft(text))
}

// Split splits the text on every non-overlapping occurrence of the delimiter.
//
// Adjacent, leading and trailing delimiters produce empty parts so that joining the result with the
// delimiter always gives back the original text. An empty text gives a single empty part. An empty
// delimiter is rejected with ErrInvalidArgument.
func Split(text string, delimiter string) ([]string, error) {
	if delimiter == "" {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot split %q on an empty delimiter", text)
	}
	indexes := stringIndexes(text, delimiter)
	lastIdx := 0
	result := make([]string, len(indexes)+1)
	for i, idx := range indexes {
		result[i] = text[lastIdx:idx]
		lastIdx = idx + len(delimiter)
	}
	result[len(indexes)] = text[lastIdx:]
	return result, nil
}

// stringIndexes returns the start of every non-overlapping occurrence of value, scanning left to right
func stringIndexes(text string, value string) []int {
	answer := []int{}
	offset := 0
	for {
		idx := strings.Index(text[offset:], value)
		if idx < 0 {
			break
		}
		answer = append(answer, offset+idx)
		offset += idx + len(value)
	}
	return answer
}

// StartsWith returns true if the text begins with prefix. The comparison is byte-wise and case sensitive
func StartsWith(text string, prefix string) bool {
	if len(prefix) > len(text) {
		return false
	}
	return text[:len(prefix)] == prefix
}

// EndsWith returns true if the text finishes with suffix. The comparison is byte-wise and case sensitive
func EndsWith(text string, suffix string) bool {
	if len(suffix) > len(text) {
		return false
	}
	return text[len(text)-len(suffix):] == suffix
}

// ToLower maps the ASCII letters A-Z to lower case, every other byte passes through unchanged
func ToLower(text string) string {
	return mapASCII(text, 'A', 'Z', 'a'-'A')
}

// ToUpper maps the ASCII letters a-z to upper case, every other byte passes through unchanged
func ToUpper(text string) string {
	return mapASCII(text, 'a', 'z', 256-('a'-'A'))
}

func mapASCII(text string, lo byte, hi byte, delta byte) string {
	first := -1
	for i := 0; i < len(text); i++ {
		if text[i] >= lo && text[i] <= hi {
			first = i
			break
		}
	}
	if first < 0 {
		return text
	}
	b := []byte(text)
	for i := first; i < len(b); i++ {
		if b[i] >= lo && b[i] <= hi {
			b[i] += delta
		}
	}
	return string(b)
}

// BoolToString returns the fixed literals "true" or "false"
func BoolToString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

// IsBlank returns true if the text is empty or only contains ASCII whitespace
func IsBlank(text string) bool {
	return Trim(text) == ""
}

// Replace substitutes every non-overlapping occurrence of from with to, left to right.
// The search resumes after each inserted replacement so occurrences introduced by to are not
// replaced again. An empty from returns the text unchanged.
func Replace(text string, from string, to string) string {
	if from == "" {
		return text
	}
	indexes := stringIndexes(text, from)
	if len(indexes) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(indexes)*(len(to)-len(from)))
	lastIdx := 0
	for _, idx := range indexes {
		b.WriteString(text[lastIdx:idx])
		b.WriteString(to)
		lastIdx = idx + len(from)
	}
	b.WriteString(text[lastIdx:])
	return b.String()
}
