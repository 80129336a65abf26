// Package gs1normalize strips symbology identifiers and canonicalizes
// group separator characters before an element string reaches the
// tokenizer.
package gs1normalize

import "strings"

// GroupSeparator is the canonical GS1 field separator, ASCII 0x1D
// (FNC1 in barcode symbol data).
const GroupSeparator = '\x1d'

// symbologyPrefixes maps the AIM symbology identifiers GS1 barcode
// scanners prepend to decoded data onto a human-readable symbology
// name. Every identifier is three characters and none is a prefix of
// another, so at most one can match; the slice gives a fixed,
// deterministic match order.
var symbologyPrefixes = []struct {
	prefix string
	name   string
}{
	{"]d2", "GS1 DataMatrix"},
	{"]C1", "GS1-128"},
	{"]e0", "GS1 DataBar"},
	{"]e1", "GS1 DataBar Limited"},
	{"]e2", "GS1 DataBar Expanded"},
	{"]Q3", "GS1 QR Code"},
}

// StripSymbology removes a recognized AIM symbology identifier prefix
// from raw, if present, and reports the symbology's human-readable name.
// If raw carries no recognized prefix, it is returned unchanged with an
// empty symbology name.
func StripSymbology(raw string) (stripped string, symbology string) {
	for _, sp := range symbologyPrefixes {
		if strings.HasPrefix(raw, sp.prefix) {
			return raw[len(sp.prefix):], sp.name
		}
	}
	return raw, ""
}

// DefaultGSCharacters is the set of characters treated as an
// equivalent to the group separator when encountered in barcode
// payload text: the real GS control character plus the handful of
// human-typed or display-rendered stand-ins seen in the wild
// (caret, tilde, pipe, and the literal "<GS>" marker).
var DefaultGSCharacters = []string{"\x1d", "<GS>", "", "~", "|", "^"}

// Normalize canonicalizes every recognized group-separator stand-in in
// raw to the single-byte GroupSeparator, and trims surrounding
// whitespace. gsCharacters overrides DefaultGSCharacters when non-nil.
func Normalize(raw string, gsCharacters []string) string {
	if gsCharacters == nil {
		gsCharacters = DefaultGSCharacters
	}
	raw = strings.TrimSpace(raw)

	// Replace multi-byte markers first so a later single-byte pass
	// doesn't fragment them.
	for _, marker := range gsCharacters {
		if len(marker) > 1 {
			raw = strings.ReplaceAll(raw, marker, string(GroupSeparator))
		}
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		replaced := false
		for _, marker := range gsCharacters {
			if len(marker) == 1 && c == marker[0] {
				b.WriteByte(GroupSeparator)
				replaced = true
				break
			}
		}
		if !replaced {
			b.WriteByte(c)
		}
	}
	return b.String()
}
