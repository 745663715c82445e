package match

import (
	"strings"
	"unicode"
)

// suffixes stripped by NormalizeNameWithSuffixStrip, longest first.
var suffixes = []string{"__c", "__r", "ids", "id"}

// NormalizeName lower-cases s and drops separators, so "Billing_City",
// "billing-city" and "BillingCity" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// NormalizeNameWithSuffixStrip normalizes s after removing one common
// suffix such as a custom-field marker ("__c") or "Id".
func NormalizeNameWithSuffixStrip(s string) string {
	lower := strings.ToLower(s)

	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			lower = strings.TrimSuffix(lower, suffix)

			break
		}
	}

	return NormalizeName(lower)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.' || r == ':'
}
