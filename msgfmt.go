// Package msgfmt formats message templates in a bounded subset of ICU
// MessageFormat: {name} interpolation plus plural and select constructs with
// recursive nesting. Untrusted template content is safe to format: text
// length, nesting depth and scan iterations are all statically bounded, and
// a Format call always returns a string, degrading to plain interpolation on
// any internal failure.
package msgfmt

import "github.com/loopcontext/msgfmt/internal/plural"

const (
	DefaultLocale            = "en"
	DefaultMaxTextLength     = 50000
	DefaultMaxNestingDepth   = 5
	DefaultMaxScanIterations = 100
)

// Params carries the caller's parameter values, keyed by placeholder name.
// Values are strings or numbers; placeholders without a matching key are
// left as literal text.
type Params map[string]interface{}

// PluralRule maps a count to a plural category ("one", "few", ...).
type PluralRule = plural.Rule

// PluralBackend constructs plural rules per locale.
type PluralBackend = plural.Backend

// CLDRBackend returns the plural backend built on the CLDR cardinal rules.
// It is the default.
func CLDRBackend() PluralBackend { return plural.CLDR() }

// FallbackBackend returns the minimal one/other plural backend.
func FallbackBackend() PluralBackend { return plural.Fallback() }

// Options bundles the per-call configuration.
type Options struct {
	// Locale drives plural category selection; empty means the formatter's
	// default locale.
	Locale string
	// RuleCache, when set, amortizes plural rule construction. The cache is
	// owned by the caller and may be shared across formatters.
	RuleCache *RuleCache
	// OnError observes recoverable failures (truncation, depth aborts).
	// Format never returns an error itself.
	OnError func(err error, context string)
}

// Config configures a Formatter. Zero values take the package defaults.
type Config struct {
	DefaultLocale     string
	MaxTextLength     int
	MaxNestingDepth   int
	MaxScanIterations int
	// Backend selects the plural rule source once, at construction.
	Backend PluralBackend
}

// Formatter formats message templates. It holds no per-call state and is
// safe for concurrent use; the only shared mutable pieces are its stats
// counters and any caller-supplied RuleCache, both internally synchronized.
type Formatter struct {
	defaultLocale     string
	maxTextLength     int
	maxNestingDepth   int
	maxScanIterations int
	backend           PluralBackend
	defaultRule       PluralRule
	stats             formatterStats
}

func NewFormatter(cfg Config) *Formatter {
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}
	if cfg.MaxNestingDepth <= 0 {
		cfg.MaxNestingDepth = DefaultMaxNestingDepth
	}
	if cfg.MaxScanIterations <= 0 {
		cfg.MaxScanIterations = DefaultMaxScanIterations
	}
	if cfg.Backend == nil {
		cfg.Backend = plural.CLDR()
	}

	f := &Formatter{
		defaultLocale:     cfg.DefaultLocale,
		maxTextLength:     cfg.MaxTextLength,
		maxNestingDepth:   cfg.MaxNestingDepth,
		maxScanIterations: cfg.MaxScanIterations,
		backend:           cfg.Backend,
	}
	rule, err := f.backend.Rule(f.defaultLocale)
	if err != nil {
		rule = fallbackDefaultRule()
	}
	f.defaultRule = rule

	return f
}

// Format resolves text against params. A nil params skips all evaluation.
// Oversized input is truncated and reported; a failure inside the ICU path
// is reported and the call falls back to plain interpolation of the input
// text with no partial ICU substitutions. Format always returns a string.
func (f *Formatter) Format(text string, params Params, opts *Options) string {
	if params == nil {
		return text
	}

	locale := f.defaultLocale
	var cache *RuleCache
	var onError func(err error, context string)
	if opts != nil {
		if opts.Locale != "" {
			locale = opts.Locale
		}
		cache = opts.RuleCache
		onError = opts.OnError
	}

	if len(text) > f.maxTextLength {
		text = text[:f.maxTextLength]
		f.stats.incrementTruncatedInputs()
		reportError(onError, ErrTextTruncated, errContextTruncate)
	}

	if !containsICU(text) {
		return interpolate(text, params)
	}

	result, err := f.formatICU(text, params, 0, locale, cache)
	if err != nil {
		f.stats.incrementICUFallbacks()
		reportError(onError, err, errContextICU)
		return interpolate(text, params)
	}
	return result
}

func reportError(onError func(err error, context string), err error, context string) {
	if onError == nil {
		return
	}
	// A panicking observer must not fail the format call.
	defer func() {
		_ = recover()
	}()
	onError(err, context)
}

func fallbackDefaultRule() PluralRule {
	rule, _ := plural.Fallback().Rule(DefaultLocale)
	return rule
}

var defaultFormatter = NewFormatter(Config{})

// Format resolves text with the package default formatter (English default
// locale, CLDR backend, default bounds).
func Format(text string, params Params, opts *Options) string {
	return defaultFormatter.Format(text, params, opts)
}
