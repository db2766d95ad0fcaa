package msgfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// interpolate replaces every {identifier} whose identifier is a key in params
// with the value's text form. Unknown identifiers stay as literal text. The
// scan is a single left-to-right pass; no per-key whole-string substitution.
func interpolate(text string, params Params) string {
	if len(params) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		if text[i] != '{' {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isWordByte(text[j]) {
			j++
		}
		if j > i+1 && j < len(text) && text[j] == '}' {
			if value, found := params[text[i+1:j]]; found {
				b.WriteString(stringValue(value))
				i = j + 1
				continue
			}
		}
		b.WriteByte('{')
		i++
	}

	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// stringValue converts a parameter value to its text form. Numbers use their
// canonical decimal representation.
func stringValue(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case int:
		return strconv.Itoa(typed)
	case int8:
		return strconv.FormatInt(int64(typed), 10)
	case int16:
		return strconv.FormatInt(int64(typed), 10)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	case uint:
		return strconv.FormatUint(uint64(typed), 10)
	case uint8:
		return strconv.FormatUint(uint64(typed), 10)
	case uint16:
		return strconv.FormatUint(uint64(typed), 10)
	case uint32:
		return strconv.FormatUint(uint64(typed), 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case float32:
		return formatNumber(float64(typed))
	case float64:
		return formatNumber(typed)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// numericValue extracts a numeric parameter value for plural selection.
// Numeric strings are accepted; anything else reports false.
func numericValue(value interface{}) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// formatNumber renders the canonical decimal text of n: integral values
// without a fraction part, everything else in plain (non-scientific) form.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
