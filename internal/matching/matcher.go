// Package matching reconciles free-text fighter, event and method names
// from the external results feed against the internal catalog. The matcher
// is a heuristic with known false-positive/negative risk; the admin resolve
// path always exists as the correction mechanism.
package matching

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// EventDateWindow is the proximity window used when event names do not
// fuzzy-match but the feed event sits close enough on the calendar.
const EventDateWindow = 48 * time.Hour

// minLastTokenLen guards the surname rule against initials and short tags
const minLastTokenLen = 3

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName lowercases, folds diacritics and strips everything that is
// not a letter, collapsing token separators to single spaces.
// "José Aldo Jr." -> "jose aldo jr"
func normalizeName(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastWasSpace := true
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
			lastWasSpace = false
		case !lastWasSpace:
			b.WriteRune(' ')
			lastWasSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// NamesMatch reports whether two free-text names refer to the same fighter
// or event: equal after normalization, same surname (last token longer than
// three letters, abbreviated first names must agree on the initial), or one
// containing the other.
func NamesMatch(a, b string) bool {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	la, lb := lastToken(na), lastToken(nb)
	if len(la) > minLastTokenLen && la == lb && initialsCompatible(na, nb) {
		return true
	}

	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// EventsMatch matches a feed event against an internal fight card by name,
// falling back to date proximity when the naming authorities disagree.
func EventsMatch(internalName string, internalDate time.Time, feedName string, feedDate time.Time) bool {
	if NamesMatch(internalName, feedName) {
		return true
	}
	if internalDate.IsZero() || feedDate.IsZero() {
		return false
	}
	diff := internalDate.Sub(feedDate)
	if diff < 0 {
		diff = -diff
	}
	return diff <= EventDateWindow
}

func lastToken(normalized string) string {
	if idx := strings.LastIndexByte(normalized, ' '); idx >= 0 {
		return normalized[idx+1:]
	}
	return normalized
}

func firstToken(normalized string) string {
	if idx := strings.IndexByte(normalized, ' '); idx >= 0 {
		return normalized[:idx]
	}
	return normalized
}

// initialsCompatible guards the surname rule against abbreviated first names
// that disagree: "j jones" matches "jon jones" while "b jones" does not.
// Names without a first token, or with two spelled-out first names, pass
// through unconstrained.
func initialsCompatible(na, nb string) bool {
	fa, fb := firstToken(na), firstToken(nb)
	if fa == na || fb == nb {
		return true
	}
	if len(fa) == 1 || len(fb) == 1 {
		return fa[0] == fb[0]
	}
	return true
}
