// internal/app/system/normalize/normalize.go

// Package normalize standardizes form input before it reaches the API.
// Every value is plain text: markup is stripped outright, not escaped,
// so a pasted "<b>John</b>" stores as "John".
package normalize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes all HTML. Safe for concurrent use.
var strict = bluemonday.StrictPolicy()

// plain strips tags and restores entities the policy escaped, so literal
// text like "O'Brien & Sons" survives untouched.
func plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Name normalizes a person's display name. Case is preserved.
func Name(s string) string {
	return plain(s)
}

// Phone normalizes a mobile phone entry. Only surrounding whitespace and
// markup are removed; separators stay as typed, since lookups match the
// stored string verbatim.
func Phone(s string) string {
	return plain(s)
}

// Search normalizes a search box value. Case is preserved because name
// matching folds case itself and phone matching must not.
func Search(s string) string {
	return plain(s)
}
