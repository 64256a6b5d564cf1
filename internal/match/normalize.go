package match

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a display name for comparison: lowercase and
// keep only [a-z0-9], so brackets, spaces and punctuation vanish.
// Examples:
//   - "Product (Carbon) Footprint" -> "productcarbonfootprint"
//   - "Product Carbon Footprint" -> "productcarbonfootprint"
//   - "PCF" -> "pcf"
func Normalize(s string) string {
	s = strings.ToLower(s)

	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// NormalizeBase is Normalize with every "( ... )" segment removed first:
// "Product Carbon Footprint (PCF)" -> "productcarbonfootprint".
func NormalizeBase(s string) string {
	return Normalize(dropParentheticals(s))
}

// NameKeys returns the distinct non-empty keys under which a preferred
// name is compared: its Normalize and NormalizeBase forms.
func NameKeys(s string) []string {
	full := Normalize(s)
	base := NormalizeBase(s)

	switch {
	case full == "":
		return nil
	case base == "" || base == full:
		return []string{full}
	default:
		return []string{full, base}
	}
}

// dropParentheticals removes every "(...)" segment. An unbalanced "("
// drops the rest of the string.
func dropParentheticals(s string) string {
	if !strings.ContainsRune(s, '(') {
		return s
	}

	var sb strings.Builder

	depth := 0

	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Tokenize splits free text into lowercase word tokens. Parenthetical
// segments are dropped and identifiers are split at CamelCase boundaries,
// so "dataQualityRating (DQR)" yields ["data", "quality", "rating"].
func Tokenize(s string) []string {
	words := strings.FieldsFunc(dropParentheticals(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tokens []string

	for _, w := range words {
		for _, t := range tokenizeCamelCase(w) {
			tokens = append(tokens, strings.ToLower(t))
		}
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase word into tokens.
// Examples:
//   - "technologicalDQR" -> ["technological", "DQR"]
//   - "PCFRating" -> ["PCF", "Rating"]
//   - "co2" -> ["co2"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// startsToken reports whether a new token begins at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	// "dataQuality": split before 'Q'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// "PCFRating": split before 'R'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}
