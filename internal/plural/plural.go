// Package plural resolves CLDR plural categories for a locale and a count.
// Category names: "zero", "one", "two", "few", "many", "other"; "other" always exists.
package plural

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	xplural "golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

//go:generate mockgen -source=$GOFILE -package mock_plural -destination=../../test/mock/$GOFILE

const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

// Rule maps a count to the plural category of one specific locale.
// A Rule is immutable once constructed and safe for concurrent reads.
type Rule interface {
	Category(n float64) string
}

// Backend constructs plural rules. Construction may be expensive; callers are
// expected to cache the returned rules per locale.
type Backend interface {
	Rule(locale string) (Rule, error)
}

// CLDR returns the backend backed by the Unicode CLDR cardinal rules
// shipped with golang.org/x/text.
func CLDR() Backend {
	return cldrBackend{}
}

// Fallback returns the minimal backend for runtimes that want to drop the
// CLDR tables: every locale resolves, count 1 maps to "one", everything
// else to "other".
func Fallback() Backend {
	return fallbackBackend{}
}

type cldrBackend struct{}

func (cldrBackend) Rule(locale string) (Rule, error) {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return nil, fmt.Errorf("plural: unrecognized locale %q: %w", locale, err)
	}
	return cldrRule{tag: tag}, nil
}

type cldrRule struct {
	tag language.Tag
}

func (r cldrRule) Category(n float64) string {
	digits, exp, scale := decimalDigits(n)
	switch xplural.Cardinal.MatchDigits(r.tag, digits, exp, scale) {
	case xplural.Zero:
		return Zero
	case xplural.One:
		return One
	case xplural.Two:
		return Two
	case xplural.Few:
		return Few
	case xplural.Many:
		return Many
	default:
		return Other
	}
}

type fallbackBackend struct{}

func (fallbackBackend) Rule(locale string) (Rule, error) {
	return fallbackRule{}, nil
}

type fallbackRule struct{}

func (fallbackRule) Category(n float64) string {
	if n == 1 {
		return One
	}
	return Other
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	return strings.ReplaceAll(locale, "_", "-")
}

// decimalDigits decomposes the absolute value of n into the digit form the
// CLDR matcher expects: the digit bytes, the count of integer digits, and
// the count of fraction digits.
func decimalDigits(n float64) (digits []byte, exp int, scale int) {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		scale = len(s) - idx - 1
		s = s[:idx] + s[idx+1:]
	}
	digits = []byte(s)
	for i := range digits {
		digits[i] -= '0'
	}
	exp = len(digits) - scale
	return digits, exp, scale
}
