package synthesizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName turns a provider name into a display name: hyphens become
// spaces, and every whitespace-delimited token gets an upper-case first
// letter and lower-case remainder. Tokens are joined with single spaces.
//
//	NormalizeName("mr-mime")      // "Mr Mime"
//	NormalizeName("deoxys-speed") // "Deoxys Speed"
func NormalizeName(raw string) string {
	// Casers carry state, so each call gets its own.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	tokens := strings.Fields(strings.ReplaceAll(raw, "-", " "))
	for i, tok := range tokens {
		_, size := utf8.DecodeRuneInString(tok)
		tokens[i] = upper.String(tok[:size]) + lower.String(tok[size:])
	}
	return strings.Join(tokens, " ")
}
