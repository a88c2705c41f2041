/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package themes provides the themes command for tzeva.
package themes

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tzeva/config"
	"bennypowers.dev/tzeva/fs"
	"bennypowers.dev/tzeva/internal/logger"
	"bennypowers.dev/tzeva/source"
	"bennypowers.dev/tzeva/theme"
)

// Cmd is the themes cobra command. It shows how the source's themes pair
// up into light/dark groups, which is the first thing to check when an
// export produces fewer color sets than expected.
var Cmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme groups from the configured source",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	snapshotGlobs, _ := cmd.Flags().GetStringArray("snapshot")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	if len(snapshotGlobs) > 0 {
		cfg.Snapshot.Globs = snapshotGlobs
	}
	if baseURL := viper.GetString("base-url"); baseURL != "" {
		cfg.Platform.BaseURL = baseURL
	}
	if accessToken := viper.GetString("access-token"); accessToken != "" {
		cfg.Platform.AccessToken = accessToken
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	src, err := source.FromConfig(cfg, os.DirFS(cwd))
	if err != nil {
		return err
	}

	dataSet, err := src.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("error fetching themes: %w", err)
	}

	log := logger.NewMirrored(os.Stderr)
	groups := theme.GroupThemes(dataSet.Themes, log)

	if len(groups) == 0 {
		fmt.Println("no light/dark theme groups found")
		return nil
	}

	for _, group := range groups {
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(group.Name))
		if group.Light != nil {
			fmt.Printf("  light: %s (%s)\n", group.Light.Name, group.Light.ID)
		}
		if group.Dark != nil {
			fmt.Printf("  dark:  %s (%s)\n", group.Dark.Name, group.Dark.ID)
		}
	}
	return nil
}
