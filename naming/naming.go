/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming derives code-safe file and folder names from token and
// theme names in a configurable casing style.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a naming-case style for derived names.
type Style string

const (
	// StyleKebab produces kebab-case names (default).
	StyleKebab Style = "kebab"

	// StyleCamel produces camelCase names.
	StyleCamel Style = "camel"

	// StylePascal produces PascalCase names.
	StylePascal Style = "pascal"

	// StyleSnake produces snake_case names.
	StyleSnake Style = "snake"

	// StyleTitle produces Title Case names.
	StyleTitle Style = "title"
)

// titleCaser is locale-neutral; derived names are identifiers, not prose.
var titleCaser = cases.Title(language.Und)

// ParseStyle converts a string to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kebab", "kebab-case", "":
		return StyleKebab, nil
	case "camel", "camelcase":
		return StyleCamel, nil
	case "pascal", "pascalcase":
		return StylePascal, nil
	case "snake", "snake_case":
		return StyleSnake, nil
	case "title":
		return StyleTitle, nil
	default:
		return "", fmt.Errorf("unknown naming style: %s (valid: kebab, camel, pascal, snake, title)", s)
	}
}

// SafeName converts a raw token or theme name to a code-safe name in the
// given style. Unsafe path characters are dropped during word splitting,
// so the result is always usable as a file or folder name segment.
func SafeName(raw string, style Style) string {
	words := splitIntoWords(raw)
	switch style {
	case StyleCamel:
		return joinCamel(words, false)
	case StylePascal:
		return joinCamel(words, true)
	case StyleSnake:
		return strings.ToLower(strings.Join(words, "_"))
	case StyleTitle:
		for i, word := range words {
			words[i] = titleCaser.String(strings.ToLower(word))
		}
		return strings.Join(words, " ")
	default:
		return strings.ToLower(strings.Join(words, "-"))
	}
}

func joinCamel(words []string, upperFirst bool) string {
	var sb strings.Builder
	for i, word := range words {
		if i == 0 && !upperFirst {
			sb.WriteString(strings.ToLower(word))
			continue
		}
		sb.WriteString(titleCaser.String(strings.ToLower(word)))
	}
	return sb.String()
}

// splitIntoWords splits on separators and camelCase boundaries, keeping
// only alphanumeric runes.
func splitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if unicode.IsUpper(r) {
				flush()
			}
			current.WriteRune(r)
		case unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return words
}

// Tracker deduplicates derived names within one export pass. The first use
// of a name is returned unchanged; later uses get a numeric suffix.
type Tracker struct {
	taken map[string]bool
}

// NewTracker creates an empty name tracker.
func NewTracker() *Tracker {
	return &Tracker{taken: make(map[string]bool)}
}

// Claim returns a unique variant of name within this tracker's scope.
// Collisions are resolved as name-2, name-3, and so on. Generated names
// are claimed too, so a later token whose safe name equals an earlier
// suffixed result still gets a fresh name.
func (t *Tracker) Claim(name string) string {
	candidate := name
	for n := 2; t.taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", name, n)
	}
	t.taken[candidate] = true
	return candidate
}
