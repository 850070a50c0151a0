// Package namekey normalizes company names into stable lookup keys for
// caching and static-table matching.
package namekey

import (
	"crypto/md5"
	"fmt"
	"strings"
	"unicode"
)

var corporateSuffixes = []string{
	"inc", "incorporated", "corp", "corporation",
	"llc", "ltd", "limited", "plc", "co",
	"group", "holdings",
}

// Normalize lowercases a company name, strips punctuation and trailing
// corporate suffixes, and collapses whitespace. "JPMorgan Chase & Co."
// and "jpmorgan chase" normalize to the same key.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '.':
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for len(words) > 1 {
		last := words[len(words)-1]
		if !isSuffix(last) {
			break
		}
		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}

// CacheKey returns a fixed-length key for the normalized name, suitable
// for Redis keys and filenames.
func CacheKey(name string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(Normalize(name))))
}

// Domain guesses a company website domain when none was provided.
func Domain(name string) string {
	return strings.ReplaceAll(Normalize(name), " ", "") + ".com"
}

func isSuffix(word string) bool {
	for _, s := range corporateSuffixes {
		if word == s {
			return true
		}
	}
	return false
}
