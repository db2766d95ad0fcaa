package msgfmt

import "errors"

// Recoverable errors reported through Options.OnError. Format never returns
// or panics with these; it degrades to plain interpolation instead.
var (
	// ErrTextTruncated signals that the input exceeded MaxTextLength and was
	// cut down before processing.
	ErrTextTruncated = errors.New("msgfmt: input text exceeds maximum length")

	// ErrNestingTooDeep signals that resolving the template would exceed
	// MaxNestingDepth.
	ErrNestingTooDeep = errors.New("msgfmt: nesting depth limit exceeded")
)

// Context strings passed as the second OnError argument.
const (
	errContextTruncate = "truncate"
	errContextICU      = "icu"
)
