// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the DataHive admin CLI.
// It implements subcommands for authentication, category management, lead
// management and dashboard analytics using the Cobra CLI framework, with a
// terminal UI built on pterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"datahive/admincli/internal/logging"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "datahive-admin",
	Short:         "DataHive admin CLI for leads, categories and dashboard analytics",
	Long:          `datahive-admin is a command-line client for the DataHive lead-generation API. Staff log in once, then manage category taxonomies, create and bulk-import sales leads, and inspect aggregate revenue and subscription analytics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("datahive-admin %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during
// execution. Surfaced errors go through the masking presenter so credentials
// never reach stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
