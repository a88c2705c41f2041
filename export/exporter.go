/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export orchestrates catalog generation: it fetches a token
// snapshot, filters color tokens, pairs selected themes into light/dark
// groups, and emits one Contents.json descriptor per folder and color set.
// Writing the descriptors to disk is the caller's job.
package export

import (
	"context"
	"fmt"
	"path"
	"strings"

	"bennypowers.dev/tzeva/catalog"
	"bennypowers.dev/tzeva/config"
	"bennypowers.dev/tzeva/internal/logger"
	"bennypowers.dev/tzeva/naming"
	"bennypowers.dev/tzeva/theme"
	"bennypowers.dev/tzeva/token"
)

// LogFileName is the run log artifact written at the catalog root.
const LogFileName = "log.txt"

// File is one emitted output descriptor.
type File struct {
	// Path is the folder the file belongs in, relative to the export root.
	Path string

	// Name is the file name within Path.
	Name string

	// Content is the file's full content.
	Content []byte
}

// Source fetches one read-only data snapshot per run.
type Source interface {
	Fetch(ctx context.Context) (*token.DataSet, error)
}

// PropertyWriter writes a derived export name back to a custom token
// property. Sources that cannot write back simply don't implement it.
type PropertyWriter interface {
	WriteTokenProperty(ctx context.Context, tokenID, property, value string) error
}

// ThemeNotFoundError reports a requested theme id with no matching theme.
// It aborts the entire run.
type ThemeNotFoundError struct {
	ID string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("no theme matches requested id %q", e.ID)
}

// Exporter produces the asset-catalog file set for one run.
type Exporter struct {
	Source Source
	Config *config.Config
	Log    *logger.Log

	// Preview disables all side effects beyond the returned file list,
	// including name write-back.
	Preview bool
}

// New creates an exporter with the given collaborators.
func New(source Source, cfg *config.Config, log *logger.Log) *Exporter {
	return &Exporter{Source: source, Config: cfg, Log: log}
}

// Export runs the full pipeline and returns every emitted file plus the
// run log. Theme groups are processed strictly sequentially; the returned
// slice is complete when Export returns.
func (e *Exporter) Export(ctx context.Context) ([]File, error) {
	cfg := e.Config

	dataSet, err := e.Source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching data: %w", err)
	}

	colors := token.ColorTokens(dataSet.Tokens)
	e.Log.Infof("fetched %d tokens (%d color), %d themes, %d collections",
		len(dataSet.Tokens), len(colors), len(dataSet.Themes), len(dataSet.Collections))

	themes, err := resolveThemes(dataSet.Themes, cfg.Themes)
	if err != nil {
		return nil, err
	}

	if cfg.ExcludeCollectionsInPipelines && len(cfg.ExcludedCollections) > 0 {
		colors = e.excludeCollections(colors, dataSet)
	}

	groups := theme.GroupThemes(themes, e.Log)

	root := cfg.RootCatalogPath
	var files []File

	if cfg.GenerateRootCatalog {
		content, err := catalog.RootContents()
		if err != nil {
			return nil, fmt.Errorf("error building root catalog: %w", err)
		}
		files = append(files, File{Path: root, Name: catalog.ContentsFileName, Content: content})
	}

	for _, group := range groups {
		groupFiles, err := e.exportGroup(ctx, group, colors, dataSet.Tokens, root)
		if err != nil {
			return nil, err
		}
		files = append(files, groupFiles...)
	}

	files = append(files, File{
		Path:    root,
		Name:    LogFileName,
		Content: []byte(e.Log.Contents()),
	})

	return files, nil
}

// exportGroup emits the folder marker and per-token color sets for one
// theme group.
func (e *Exporter) exportGroup(
	ctx context.Context,
	group *theme.Group,
	colors []*token.Token,
	allTokens []*token.Token,
	root string,
) ([]File, error) {
	groupName := naming.SafeName(group.Name, e.Config.GroupNameStyle)
	groupPath := path.Join(root, groupName)

	namespace, err := catalog.NamespaceContents()
	if err != nil {
		return nil, fmt.Errorf("error building namespace marker for %s: %w", group.Name, err)
	}
	files := []File{{Path: groupPath, Name: catalog.ContentsFileName, Content: namespace}}

	if group.Light == nil {
		e.Log.Infof("theme group %q has no light theme, skipping color generation", group.Name)
		return files, nil
	}

	baseValues := token.ValueIndex(token.ApplyThemes(allTokens, []*token.Theme{group.Light}))
	darkValues := map[string]string{}
	if group.Dark != nil {
		darkValues = token.ValueIndex(token.ApplyThemes(allTokens, []*token.Theme{group.Dark}))
	}

	tracker := naming.NewTracker()

	for _, tok := range colors {
		baseValue, ok := baseValues[tok.ID]
		if !ok {
			baseValue = tok.Value
		}
		darkValue := darkValues[tok.ID]

		name := tracker.Claim(naming.SafeName(tok.Name, e.Config.FolderNameStyle))

		colorSet, err := catalog.NewColorSet(baseValue)
		if err != nil {
			e.Log.Warnf("token %q: %v, skipping", tok.Name, err)
			continue
		}
		if darkValue != "" {
			if err := colorSet.AddDarkVariant(darkValue); err != nil {
				e.Log.Warnf("token %q: %v, omitting dark variant", tok.Name, err)
			}
		}
		content, err := colorSet.Marshal()
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok.Name, err)
		}

		files = append(files, File{
			Path:    path.Join(groupPath, name+".colorset"),
			Name:    catalog.ContentsFileName,
			Content: content,
		})

		if err := e.writeBackName(ctx, tok, name); err != nil {
			e.Log.Warnf("token %q: name write-back failed: %v", tok.Name, err)
		}
	}

	e.Log.Infof("theme group %q: emitted %d color sets", group.Name, len(files)-1)
	return files, nil
}

// writeBackName writes the derived export name to the configured token
// property. It is a no-op in preview mode, when write-back is disabled, or
// when the source cannot write properties.
func (e *Exporter) writeBackName(ctx context.Context, tok *token.Token, name string) error {
	cfg := e.Config
	if e.Preview || !cfg.WriteNameToProperty || cfg.PropertyToWriteNameTo == "" {
		return nil
	}
	writer, ok := e.Source.(PropertyWriter)
	if !ok {
		return nil
	}
	return writer.WriteTokenProperty(ctx, tok.ID, cfg.PropertyToWriteNameTo, name)
}

// resolveThemes matches requested ids against theme id or idInVersion.
// Any unmatched id aborts the run.
func resolveThemes(themes []*token.Theme, requested []string) ([]*token.Theme, error) {
	var resolved []*token.Theme
	for _, id := range requested {
		var match *token.Theme
		for _, th := range themes {
			if th.ID == id || th.IDInVersion == id {
				match = th
				break
			}
		}
		if match == nil {
			return nil, &ThemeNotFoundError{ID: id}
		}
		resolved = append(resolved, match)
	}
	return resolved, nil
}

// excludeCollections drops color tokens whose collection name matches the
// configured exclusion list. Tokens with no resolvable collection are kept.
func (e *Exporter) excludeCollections(colors []*token.Token, dataSet *token.DataSet) []*token.Token {
	excluded := make(map[string]bool, len(e.Config.ExcludedCollections))
	for _, name := range e.Config.ExcludedCollections {
		excluded[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var kept []*token.Token
	for _, tok := range colors {
		collection := dataSet.CollectionByID(tok.CollectionID)
		if collection == nil {
			kept = append(kept, tok)
			continue
		}
		if excluded[strings.ToLower(strings.TrimSpace(collection.Name))] {
			e.Log.Infof("token %q excluded via collection %q", tok.Name, collection.Name)
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
