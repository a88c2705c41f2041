/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for tzeva.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tzeva/config"
	exportlib "bennypowers.dev/tzeva/export"
	"bennypowers.dev/tzeva/fs"
	"bennypowers.dev/tzeva/internal/logger"
	"bennypowers.dev/tzeva/naming"
	"bennypowers.dev/tzeva/source"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Generate an Xcode asset catalog from color tokens",
	Long: `Generate a Colors.xcassets folder of color sets from design-system color
tokens. Selected themes are paired into light/dark groups by name ("Brand
Light" / "Brand Dark"), and each color token gets a color set with a base
value and, when a dark theme exists, a dark-appearance variant.

Examples:
  # Export the Brand Light/Dark pair from the platform
  tzeva export --theme brand-light-id --theme brand-dark-id

  # Export from a local snapshot dump into a custom catalog path
  tzeva export --snapshot 'dump/**/*.json' --output Assets/Colors.xcassets

  # Show what would be written without touching the filesystem
  tzeva export --preview`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Catalog root path (default from config, or Colors.xcassets)")
	Cmd.Flags().StringArray("theme", nil, "Theme id or idInVersion to export (repeatable)")
	Cmd.Flags().Bool("preview", false, "List output files without writing or writing names back")
	Cmd.Flags().String("folder-name-style", "", "Casing for color set names: kebab, camel, pascal, snake, title")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	themeIDs, _ := cmd.Flags().GetStringArray("theme")
	preview, _ := cmd.Flags().GetBool("preview")
	styleFlag, _ := cmd.Flags().GetString("folder-name-style")
	snapshotGlobs, _ := cmd.Flags().GetStringArray("snapshot")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	if output != "" {
		cfg.RootCatalogPath = output
	}
	if len(themeIDs) > 0 {
		cfg.Themes = themeIDs
	}
	if len(snapshotGlobs) > 0 {
		cfg.Snapshot.Globs = snapshotGlobs
	}
	if baseURL := viper.GetString("base-url"); baseURL != "" {
		cfg.Platform.BaseURL = baseURL
	}
	if accessToken := viper.GetString("access-token"); accessToken != "" {
		cfg.Platform.AccessToken = accessToken
	}
	if styleFlag != "" {
		style, err := naming.ParseStyle(styleFlag)
		if err != nil {
			return err
		}
		cfg.FolderNameStyle = style
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	src, err := source.FromConfig(cfg, os.DirFS(cwd))
	if err != nil {
		return err
	}

	log := logger.New()
	exporter := exportlib.New(src, cfg, log)
	exporter.Preview = preview

	files, err := exporter.Export(cmd.Context())
	if err != nil {
		return err
	}

	if preview {
		for _, file := range files {
			fmt.Println(filepath.Join(file.Path, file.Name))
		}
		return nil
	}

	for _, file := range files {
		if err := filesystem.MkdirAll(file.Path, 0755); err != nil {
			return fmt.Errorf("error creating %s: %w", file.Path, err)
		}
		target := filepath.Join(file.Path, file.Name)
		if err := filesystem.WriteFile(target, file.Content, 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", target, err)
		}
	}

	color.Green("Wrote %d files to %s", len(files), cfg.RootCatalogPath)
	return nil
}
