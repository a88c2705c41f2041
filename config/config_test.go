/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tzeva/config"
	"bennypowers.dev/tzeva/internal/mapfs"
	"bennypowers.dev/tzeva/naming"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.True(t, cfg.GenerateRootCatalog)
	assert.Equal(t, "Colors.xcassets", cfg.RootCatalogPath)
	assert.Equal(t, naming.StyleKebab, cfg.FolderNameStyle)
	assert.Equal(t, naming.StylePascal, cfg.GroupNameStyle)
	assert.False(t, cfg.ExcludeCollectionsInPipelines)
	assert.False(t, cfg.WriteNameToProperty)
}

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tzeva.yaml", `
generateRootCatalog: true
rootCatalogPath: Assets/Colors.xcassets
excludeCollectionsInPipelines: true
excludedCollections:
  - Pipelines
  - Internal
writeNameToProperty: true
propertyToWriteNameTo: exportName
folderNameStyle: snake
themes:
  - brand-light
  - brand-dark
snapshot:
  globs:
    - dump/**/*.json
`, 0644)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Assets/Colors.xcassets", cfg.RootCatalogPath)
	assert.True(t, cfg.ExcludeCollectionsInPipelines)
	assert.Equal(t, []string{"Pipelines", "Internal"}, cfg.ExcludedCollections)
	assert.True(t, cfg.WriteNameToProperty)
	assert.Equal(t, "exportName", cfg.PropertyToWriteNameTo)
	assert.Equal(t, naming.StyleSnake, cfg.FolderNameStyle)
	assert.Equal(t, []string{"brand-light", "brand-dark"}, cfg.Themes)
	assert.Equal(t, []string{"dump/**/*.json"}, cfg.Snapshot.Globs)
	// Normalize fills unset fields.
	assert.Equal(t, naming.StylePascal, cfg.GroupNameStyle)
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tzeva.json", `{
		"platform": {"baseUrl": "https://api.example.test/v1", "accessToken": "secret"}
	}`, 0644)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://api.example.test/v1", cfg.Platform.BaseURL)
	assert.Equal(t, "secret", cfg.Platform.AccessToken)
	assert.Equal(t, "Colors.xcassets", cfg.RootCatalogPath)
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), ".")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOrDefault_InvalidFallsBack(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tzeva.yaml", "{unclosed: [", 0644)

	cfg := config.LoadOrDefault(mfs, ".")
	assert.Equal(t, config.Default(), cfg)
}
