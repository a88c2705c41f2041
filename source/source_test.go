/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"bennypowers.dev/tzeva/config"
	"bennypowers.dev/tzeva/platform"
	"bennypowers.dev/tzeva/snapshot"
	"bennypowers.dev/tzeva/source"
)

func TestFromConfig_SnapshotWinsOverPlatform(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshot.Globs = []string{"dump/*.json"}
	cfg.Platform.BaseURL = "https://api.example.test"

	src, err := source.FromConfig(cfg, fstest.MapFS{})
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if _, ok := src.(*snapshot.Source); !ok {
		t.Errorf("expected snapshot source, got %T", src)
	}
}

func TestFromConfig_Platform(t *testing.T) {
	cfg := config.Default()
	cfg.Platform.BaseURL = "https://api.example.test"

	src, err := source.FromConfig(cfg, fstest.MapFS{})
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}
	if _, ok := src.(*platform.Client); !ok {
		t.Errorf("expected platform client, got %T", src)
	}
}

func TestFromConfig_Unconfigured(t *testing.T) {
	_, err := source.FromConfig(config.Default(), fstest.MapFS{})
	if !errors.Is(err, source.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}
