/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design-system token types as fetched from a platform
// or a local snapshot. All entities are read-only snapshots for one run.
package token

// TypeColor is the token type processed by the exporter.
const TypeColor = "color"

// Token represents a single design token.
type Token struct {
	// ID is the token's identifier on the platform.
	ID string `json:"id"`

	// Name is the token's human-readable name (e.g., "Primary 500").
	Name string `json:"name"`

	// Type specifies the type of token (color, dimension, etc.).
	Type string `json:"tokenType"`

	// Value is the resolved value of the token, as a CSS color string
	// for color tokens.
	Value string `json:"value"`

	// CollectionID identifies the collection this token belongs to,
	// empty when the token is not part of a collection.
	CollectionID string `json:"collectionId,omitempty"`

	// GroupID identifies the group this token belongs to.
	GroupID string `json:"groupId,omitempty"`

	// Properties holds custom per-token properties. Export name
	// write-back targets one of these keys.
	Properties map[string]string `json:"properties,omitempty"`
}

// Theme represents a named override set that can be applied to tokens
// to produce themed values.
type Theme struct {
	// ID is the theme's identifier on the platform.
	ID string `json:"id"`

	// IDInVersion is the theme's identifier within a published version.
	// Theme selection matches against ID or IDInVersion.
	IDInVersion string `json:"idInVersion,omitempty"`

	// Name is the theme's display name (e.g., "Brand Light").
	Name string `json:"name"`

	// OverriddenValues maps token IDs to the value the token takes
	// under this theme. Tokens absent from the map are unaffected.
	OverriddenValues map[string]string `json:"overriddenValues,omitempty"`
}

// Group represents a token group.
type Group struct {
	// ID is the group's identifier.
	ID string `json:"id"`

	// Name is the group's name.
	Name string `json:"name"`

	// Path is the group's path from the root (e.g., ["color", "brand"]).
	Path []string `json:"path,omitempty"`
}

// Collection represents a token collection, used only for exclusion rules.
type Collection struct {
	// PersistentID is the collection's stable identifier.
	PersistentID string `json:"persistentId"`

	// Name is the collection's display name.
	Name string `json:"name"`
}

// DataSet is one fetched snapshot of everything the exporter consumes.
type DataSet struct {
	Tokens      []*Token      `json:"tokens"`
	Themes      []*Theme      `json:"themes"`
	Groups      []*Group      `json:"groups"`
	Collections []*Collection `json:"collections"`
}

// ColorTokens returns the subset of tokens with type color.
func ColorTokens(tokens []*Token) []*Token {
	var colors []*Token
	for _, tok := range tokens {
		if tok.Type == TypeColor {
			colors = append(colors, tok)
		}
	}
	return colors
}

// CollectionByID returns the collection with the given persistent ID,
// or nil if no such collection exists.
func (d *DataSet) CollectionByID(id string) *Collection {
	for _, c := range d.Collections {
		if c.PersistentID == id {
			return c
		}
	}
	return nil
}
