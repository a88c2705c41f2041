/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package catalog models Xcode asset-catalog Contents.json documents: the
// root catalog marker, namespace folder markers, and per-token color sets
// with base and dark-appearance entries.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ContentsFileName is the file name Xcode expects in every catalog folder.
const ContentsFileName = "Contents.json"

// Info identifies the tool that authored a catalog document.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// XcodeInfo is the info block written into every emitted document.
var XcodeInfo = Info{Version: 1, Author: "xcode"}

// Properties holds folder-level catalog properties.
type Properties struct {
	ProvidesNamespace bool `json:"provides-namespace"`
}

// FolderContents is a catalog folder marker document.
type FolderContents struct {
	Info       Info        `json:"info"`
	Properties *Properties `json:"properties,omitempty"`
}

// Appearance conditions a color entry on an appearance trait.
type Appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// Components are sRGB color components serialized as fixed-precision
// strings, matching what Xcode itself writes.
type Components struct {
	Alpha string `json:"alpha"`
	Blue  string `json:"blue"`
	Green string `json:"green"`
	Red   string `json:"red"`
}

// Color is a single color value in a color set.
type Color struct {
	ColorSpace string     `json:"color-space"`
	Components Components `json:"components"`
}

// ColorEntry is one entry in a color set's colors array. The base entry
// carries no appearances; the dark variant is tagged with a luminosity
// appearance.
type ColorEntry struct {
	Appearances []Appearance `json:"appearances,omitempty"`
	Color       Color        `json:"color"`
	Idiom       string       `json:"idiom"`
}

// ColorSetContents is a per-token color set document.
type ColorSetContents struct {
	Colors []ColorEntry `json:"colors"`
	Info   Info         `json:"info"`
}

// darkAppearance tags a color entry as the dark-luminosity variant.
var darkAppearance = []Appearance{{Appearance: "luminosity", Value: "dark"}}

// RootContents returns the serialized root catalog marker.
func RootContents() ([]byte, error) {
	return marshal(FolderContents{Info: XcodeInfo})
}

// NamespaceContents returns the serialized marker for a folder that scopes
// contained asset names.
func NamespaceContents() ([]byte, error) {
	return marshal(FolderContents{
		Info:       XcodeInfo,
		Properties: &Properties{ProvidesNamespace: true},
	})
}

// NewColorSet builds a color set with the required base entry. An
// unparseable base value returns an error so the caller can skip the token
// without aborting the run.
func NewColorSet(baseValue string) (*ColorSetContents, error) {
	base, err := parseColor(baseValue)
	if err != nil {
		return nil, fmt.Errorf("base value %q: %w", baseValue, err)
	}

	return &ColorSetContents{
		Colors: []ColorEntry{{Color: base, Idiom: "universal"}},
		Info:   XcodeInfo,
	}, nil
}

// AddDarkVariant appends the dark-luminosity entry. An unparseable value
// returns an error and leaves the document unchanged, so the base entry
// can still be emitted on its own.
func (c *ColorSetContents) AddDarkVariant(value string) error {
	dark, err := parseColor(value)
	if err != nil {
		return fmt.Errorf("dark value %q: %w", value, err)
	}
	c.Colors = append(c.Colors, ColorEntry{
		Appearances: darkAppearance,
		Color:       dark,
		Idiom:       "universal",
	})
	return nil
}

// Marshal serializes the color set document.
func (c *ColorSetContents) Marshal() ([]byte, error) {
	return marshal(c)
}

// parseColor parses a CSS color string into an sRGB catalog color.
func parseColor(value string) (Color, error) {
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return Color{}, err
	}

	// Clamp through go-colorful so out-of-gamut inputs still serialize
	// to valid component strings.
	c := colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}.Clamped()

	return Color{
		ColorSpace: "srgb",
		Components: Components{
			Alpha: formatComponent(clamp01(parsed.A)),
			Blue:  formatComponent(c.B),
			Green: formatComponent(c.G),
			Red:   formatComponent(c.R),
		},
	}, nil
}

func formatComponent(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func marshal(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
