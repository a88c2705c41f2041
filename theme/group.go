/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme pairs raw platform themes into light/dark groups by naming
// convention: "<Base> Light" and "<Base> Dark" share a group keyed by the
// first word of the trimmed name.
package theme

import (
	"regexp"
	"strings"

	"bennypowers.dev/tzeva/internal/logger"
	"bennypowers.dev/tzeva/token"
)

// Shared suffix patterns for theme classification. Matching is done against
// the trimmed, lower-cased theme name.

// lightSuffixPattern matches names whose last word is "light".
var lightSuffixPattern = regexp.MustCompile(`\blight$`)

// darkSuffixPattern matches names whose last word is "dark".
var darkSuffixPattern = regexp.MustCompile(`\bdark$`)

// Group is a light/dark pair of themes sharing a derived base name.
// At least one of Light and Dark is always non-nil.
type Group struct {
	// Name is the derived base name (e.g., "Brand" for "Brand Light").
	Name string

	// Light is the light-appearance theme, nil when absent.
	Light *token.Theme

	// Dark is the dark-appearance theme, nil when absent.
	Dark *token.Theme
}

// GroupThemes pairs themes into light/dark groups. Themes whose name carries
// no recognized suffix are skipped with a log line. A duplicate light or
// dark theme for the same base replaces the earlier one (last wins), with a
// logged warning. Groups are returned in first-seen base-name order.
func GroupThemes(themes []*token.Theme, log *logger.Log) []*Group {
	groups := make(map[string]*Group)
	var order []string

	for _, th := range themes {
		trimmed := strings.TrimSpace(th.Name)
		lowered := strings.ToLower(trimmed)

		var isLight, isDark bool
		switch {
		case lightSuffixPattern.MatchString(lowered):
			isLight = true
		case darkSuffixPattern.MatchString(lowered):
			isDark = true
		default:
			log.Infof("theme %q has no light/dark suffix, skipping", th.Name)
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) == 0 {
			continue
		}
		base := fields[0]

		group, ok := groups[base]
		if !ok {
			group = &Group{Name: base}
			groups[base] = group
			order = append(order, base)
		}

		if isLight {
			if group.Light != nil {
				log.Warnf("duplicate light theme for %q: %q replaces %q", base, th.Name, group.Light.Name)
			}
			group.Light = th
		}
		if isDark {
			if group.Dark != nil {
				log.Warnf("duplicate dark theme for %q: %q replaces %q", base, th.Name, group.Dark.Name)
			}
			group.Dark = th
		}
	}

	result := make([]*Group, 0, len(order))
	for _, base := range order {
		group := groups[base]
		// Unreachable given the skip rule above, checked anyway.
		if group.Light == nil && group.Dark == nil {
			continue
		}
		result = append(result, group)
	}
	return result
}
