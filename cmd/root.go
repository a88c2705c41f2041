/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tzeva.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tzeva/cmd/export"
	"bennypowers.dev/tzeva/cmd/themes"
	"bennypowers.dev/tzeva/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tzeva",
	Short: "Export design-system color tokens to Xcode asset catalogs",
	Long:  `tzeva fetches color tokens and light/dark themes from a design-system platform (or a local snapshot) and generates an Xcode asset catalog of color sets with dark-appearance variants.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "Platform API base URL")
	rootCmd.PersistentFlags().String("access-token", "", "Platform access token")
	rootCmd.PersistentFlags().StringArray("snapshot", nil, "Local snapshot glob (repeatable, overrides platform source)")

	viper.SetEnvPrefix("TZEVA")
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("access-token", rootCmd.PersistentFlags().Lookup("access-token"))
	_ = viper.BindEnv("base-url", "TZEVA_BASE_URL")
	_ = viper.BindEnv("access-token", "TZEVA_ACCESS_TOKEN")

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(themes.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
