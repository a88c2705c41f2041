/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration for the tzeva exporter.
package config

import (
	"bennypowers.dev/tzeva/naming"
)

// DefaultRootCatalogPath is where the asset catalog is generated when no
// path is configured.
const DefaultRootCatalogPath = "Colors.xcassets"

// Config enumerates the recognized exporter options.
type Config struct {
	// GenerateRootCatalog emits a Contents.json marker at the catalog root.
	GenerateRootCatalog bool `yaml:"generateRootCatalog" json:"generateRootCatalog"`

	// RootCatalogPath is the catalog root folder (default "Colors.xcassets").
	RootCatalogPath string `yaml:"rootCatalogPath" json:"rootCatalogPath"`

	// ExcludeCollectionsInPipelines enables collection-based exclusion.
	ExcludeCollectionsInPipelines bool `yaml:"excludeCollectionsInPipelines" json:"excludeCollectionsInPipelines"`

	// ExcludedCollections lists collection names whose tokens are dropped.
	// Matching is case-insensitive after trimming.
	ExcludedCollections []string `yaml:"excludedCollections" json:"excludedCollections"`

	// WriteNameToProperty writes each token's derived export name back to a
	// custom token property after generation.
	WriteNameToProperty bool `yaml:"writeNameToProperty" json:"writeNameToProperty"`

	// PropertyToWriteNameTo is the custom property receiving the name.
	PropertyToWriteNameTo string `yaml:"propertyToWriteNameTo" json:"propertyToWriteNameTo"`

	// FolderNameStyle is the casing for per-token folder and file names.
	FolderNameStyle naming.Style `yaml:"folderNameStyle" json:"folderNameStyle"`

	// GroupNameStyle is the casing for theme-group folder names.
	GroupNameStyle naming.Style `yaml:"groupNameStyle" json:"groupNameStyle"`

	// Themes selects themes by id or idInVersion.
	Themes []string `yaml:"themes" json:"themes"`

	// Platform configures the design-platform REST source.
	Platform PlatformConfig `yaml:"platform" json:"platform"`

	// Snapshot configures the local snapshot source. When Globs is
	// non-empty the snapshot source is used instead of the platform.
	Snapshot SnapshotConfig `yaml:"snapshot" json:"snapshot"`
}

// PlatformConfig holds design-platform connection settings.
type PlatformConfig struct {
	// BaseURL is the platform API base URL.
	BaseURL string `yaml:"baseUrl" json:"baseUrl"`

	// AccessToken authenticates API requests.
	AccessToken string `yaml:"accessToken" json:"accessToken"`
}

// SnapshotConfig holds local snapshot settings.
type SnapshotConfig struct {
	// Globs selects snapshot JSON/JSONC files (doublestar patterns).
	Globs []string `yaml:"globs" json:"globs"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		GenerateRootCatalog: true,
		RootCatalogPath:     DefaultRootCatalogPath,
		FolderNameStyle:     naming.StyleKebab,
		GroupNameStyle:      naming.StylePascal,
	}
}

// Normalize fills zero-valued fields with defaults.
func (c *Config) Normalize() {
	if c.RootCatalogPath == "" {
		c.RootCatalogPath = DefaultRootCatalogPath
	}
	if c.FolderNameStyle == "" {
		c.FolderNameStyle = naming.StyleKebab
	}
	if c.GroupNameStyle == "" {
		c.GroupNameStyle = naming.StylePascal
	}
}
