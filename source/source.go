/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source selects the data source for a run: a local snapshot when
// snapshot globs are configured, the platform API otherwise.
package source

import (
	"errors"
	"io/fs"

	"bennypowers.dev/tzeva/config"
	"bennypowers.dev/tzeva/export"
	"bennypowers.dev/tzeva/platform"
	"bennypowers.dev/tzeva/snapshot"
)

// ErrNoSource indicates that neither a snapshot nor a platform connection
// is configured.
var ErrNoSource = errors.New("no source configured: set snapshot globs or a platform base URL")

// FromConfig builds the source described by cfg. fsys is the filesystem
// snapshot globs are resolved against.
func FromConfig(cfg *config.Config, fsys fs.FS) (export.Source, error) {
	if len(cfg.Snapshot.Globs) > 0 {
		return snapshot.New(fsys, cfg.Snapshot.Globs), nil
	}
	if cfg.Platform.BaseURL != "" {
		return platform.NewClient(cfg.Platform.BaseURL, cfg.Platform.AccessToken), nil
	}
	return nil, ErrNoSource
}
