/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot loads a token data snapshot from local JSON or JSONC
// dump files, as an offline alternative to the platform source.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/tzeva/token"
)

// ErrNoFiles indicates that no snapshot files matched the given globs.
var ErrNoFiles = errors.New("no snapshot files matched")

// Source loads snapshot files matched by doublestar globs over a
// filesystem. It implements export.Source; it cannot write properties back.
type Source struct {
	fsys  fs.FS
	globs []string
}

// New creates a snapshot source reading the given glob patterns from fsys.
func New(fsys fs.FS, globs []string) *Source {
	return &Source{fsys: fsys, globs: globs}
}

// Fetch reads and merges every matched snapshot file into one DataSet.
// Files are merged in sorted path order so repeated runs see identical
// input ordering.
func (s *Source) Fetch(ctx context.Context) (*token.DataSet, error) {
	paths, err := s.expand()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, s.globs)
	}

	merged := &token.DataSet{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}

		part := &token.DataSet{}
		if err := json.Unmarshal(jsonc.ToJSON(data), part); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}

		merged.Tokens = append(merged.Tokens, part.Tokens...)
		merged.Themes = append(merged.Themes, part.Themes...)
		merged.Groups = append(merged.Groups, part.Groups...)
		merged.Collections = append(merged.Collections, part.Collections...)
	}

	return merged, nil
}

// expand resolves globs to a deduplicated, sorted path list.
func (s *Source) expand() ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range s.globs {
		matches, err := doublestar.Glob(s.fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			paths = append(paths, match)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
