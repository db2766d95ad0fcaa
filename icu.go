package msgfmt

import (
	"regexp"
	"strings"
)

const (
	pluralMarker = ", plural,"
	selectMarker = ", select,"
)

// Matches the opening of a plural/select construct up to and including the
// comma after the keyword: "{count, plural, ".
var constructOpenRegex = regexp.MustCompile(`\{\s*(\w+)\s*,\s*(plural|select)\s*,`)

// containsICU is the cheap pre-check that gates the ICU path. It looks for
// the literal marker substrings only, so constructs written without the
// canonical spacing take the plain interpolation path.
func containsICU(text string) bool {
	return strings.Contains(text, pluralMarker) || strings.Contains(text, selectMarker)
}

// formatICU resolves every plural/select construct in text, recursing into
// chosen branches, then interpolates the remaining simple placeholders.
// It fails only on the nesting depth limit; malformed constructs are skipped
// as literal text.
func (f *Formatter) formatICU(text string, params Params, depth int, locale string, cache *RuleCache) (string, error) {
	if depth > f.maxNestingDepth {
		f.stats.incrementDepthLimitAborts()
		return "", ErrNestingTooDeep
	}

	result := text
	pos := 0
	capped := true
	for iter := 0; iter < f.maxScanIterations; iter++ {
		loc := constructOpenRegex.FindStringSubmatchIndex(result[pos:])
		if loc == nil {
			capped = false
			break
		}
		start := pos + loc[0]
		bodyStart := pos + loc[1]
		variable := result[pos+loc[2] : pos+loc[3]]
		keyword := result[pos+loc[4] : pos+loc[5]]

		end, found := f.findClosingBrace(result, bodyStart)
		if !found {
			// Unbalanced candidate; step past its opening brace and rescan.
			pos = start + 1
			continue
		}

		branches := parseOptions(result[bodyStart:end])

		branch, resolved := f.selectBranch(branches, keyword, params[variable], locale, cache)
		if !resolved {
			// Variable absent (or unusable for plural): the construct stays
			// verbatim in the output.
			pos = end + 1
			continue
		}

		if containsICU(branch) {
			nested, err := f.formatICU(branch, params, depth+1, locale, cache)
			if err != nil {
				return "", err
			}
			branch = nested
		}

		result = result[:start] + branch + result[end+1:]
		pos = start + len(branch)
	}
	if capped {
		f.stats.incrementScanIterationCaps()
	}

	return interpolate(result, params), nil
}

// findClosingBrace locates the brace balancing a construct whose body starts
// at start (one level already open). It reports no match when the text runs
// out or when brace nesting inside the body exceeds the structural bound, so
// the caller treats the candidate as literal text rather than failing the
// call. Each construct level costs two braces (the option brace plus the
// construct brace); the bound is one construct level laxer than the
// recursion limit so that a chain just past the limit still matches and the
// recursion check can raise, instead of the construct being skipped quietly.
func (f *Formatter) findClosingBrace(text string, start int) (int, bool) {
	maxInnerBraces := 2*(f.maxNestingDepth+1) + 1
	braceDepth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			braceDepth++
			if braceDepth-1 > maxInnerBraces {
				return 0, false
			}
		case '}':
			braceDepth--
			if braceDepth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// parseOptions splits a construct body into branch-key to branch-template
// pairs. Keys allow word characters and '=' (exact-match keys like "=0").
// A malformed tail terminates parsing; the pairs read so far are kept.
func parseOptions(body string) map[string]string {
	branches := map[string]string{}
	i := 0
	for i < len(body) {
		for i < len(body) && isSpaceByte(body[i]) {
			i++
		}
		keyStart := i
		for i < len(body) && (isWordByte(body[i]) || body[i] == '=') {
			i++
		}
		key := body[keyStart:i]
		for i < len(body) && isSpaceByte(body[i]) {
			i++
		}
		if key == "" || i >= len(body) || body[i] != '{' {
			break
		}
		i++
		braceDepth := 1
		textStart := i
		for i < len(body) && braceDepth > 0 {
			switch body[i] {
			case '{':
				braceDepth++
			case '}':
				braceDepth--
			}
			i++
		}
		if braceDepth != 0 {
			break
		}
		branches[key] = body[textStart : i-1]
	}
	return branches
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// selectBranch picks the branch template for a construct. The second return
// is false when the value cannot drive the construct (missing variable, or a
// non-numeric value for plural), which keeps the construct literal.
func (f *Formatter) selectBranch(branches map[string]string, keyword string, value interface{}, locale string, cache *RuleCache) (string, bool) {
	if value == nil {
		return "", false
	}
	if keyword == "plural" {
		n, ok := numericValue(value)
		if !ok {
			return "", false
		}
		return f.selectPlural(branches, n, locale, cache), true
	}
	return selectByKey(branches, stringValue(value)), true
}

// selectPlural resolves a plural construct: exact "=N" key first, then the
// locale's category, then "other", then empty. Literal '#' in the chosen
// branch becomes the decimal text of the value; nested constructs inside the
// branch are the caller's concern.
func (f *Formatter) selectPlural(branches map[string]string, n float64, locale string, cache *RuleCache) string {
	numText := formatNumber(n)
	branch, ok := branches["="+numText]
	if !ok {
		category := f.pluralCategory(n, locale, cache)
		if branch, ok = branches[category]; !ok {
			branch = branches["other"]
		}
	}
	return strings.ReplaceAll(branch, "#", numText)
}

// selectByKey resolves a select construct: the value as key, then "other",
// then empty.
func selectByKey(branches map[string]string, value string) string {
	if branch, ok := branches[value]; ok {
		return branch
	}
	return branches["other"]
}

// pluralCategory maps a count to the plural category of locale, going
// through the caller's rule cache when one is supplied. Rule construction
// failure falls back to the default-locale rule built at construction; the
// failing locale is never inserted into the cache.
func (f *Formatter) pluralCategory(n float64, locale string, cache *RuleCache) string {
	if cache != nil {
		if rule, ok := cache.Get(locale); ok {
			f.stats.incrementRuleCacheHits()
			return rule.Category(n)
		}
		f.stats.incrementRuleCacheMisses()
	}

	rule, err := f.backend.Rule(locale)
	if err != nil {
		f.stats.incrementRuleFallbacks()
		return f.defaultRule.Category(n)
	}
	if cache != nil {
		cache.Set(locale, rule)
	}
	return rule.Category(n)
}
