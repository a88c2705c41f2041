/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"bennypowers.dev/tzeva/snapshot"
	"bennypowers.dev/tzeva/testutil"
)

func TestFetch_MergesFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "basic", "dump")
	src := snapshot.New(mfs.FS(), []string{"dump/**/*.json", "dump/**/*.jsonc"})

	dataSet, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(dataSet.Tokens) != 2 {
		t.Errorf("expected 2 tokens, got %d", len(dataSet.Tokens))
	}
	if len(dataSet.Themes) != 2 {
		t.Errorf("expected 2 themes, got %d", len(dataSet.Themes))
	}
	if len(dataSet.Collections) != 1 {
		t.Errorf("expected 1 collection, got %d", len(dataSet.Collections))
	}

	// The jsonc file's comments must not break parsing.
	if dataSet.Tokens[0].Name != "Primary" || dataSet.Tokens[0].Value != "#102030" {
		t.Errorf("unexpected first token: %+v", dataSet.Tokens[0])
	}
	if dataSet.Themes[0].OverriddenValues["t1"] != "#111111" {
		t.Errorf("unexpected light override: %+v", dataSet.Themes[0])
	}
}

func TestFetch_NoMatches(t *testing.T) {
	src := snapshot.New(fstest.MapFS{}, []string{"missing/**/*.json"})

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, snapshot.ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestFetch_InvalidJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"dump/bad.json": &fstest.MapFile{Data: []byte("{broken")},
	}
	src := snapshot.New(fsys, []string{"dump/*.json"})

	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected parse error for invalid JSON")
	}
}

func TestFetch_DeduplicatesOverlappingGlobs(t *testing.T) {
	fsys := fstest.MapFS{
		"dump/data.json": &fstest.MapFile{Data: []byte(`{"tokens":[{"id":"t1","name":"A","tokenType":"color","value":"#000"}]}`)},
	}
	src := snapshot.New(fsys, []string{"dump/*.json", "dump/**/*.json"})

	dataSet, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(dataSet.Tokens) != 1 {
		t.Errorf("overlapping globs must not duplicate tokens, got %d", len(dataSet.Tokens))
	}
}
