// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"datahive/admincli/internal/httperrors"
)

var importCategoryID string

// leadsImportCmd bulk-imports leads from a local CSV file. The file is
// streamed to the API as-is; row parsing and validation are the server's job.
var leadsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Bulk-import leads from a CSV file",
	Long: `The import command uploads a CSV file of leads to the API, classifying
every imported row under the given category. The file is streamed verbatim;
the server parses and validates the rows and reports how many leads were
created.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(ctx); err != nil {
			return err
		}

		if strings.TrimSpace(importCategoryID) == "" {
			return errors.New("--category is required")
		}

		path := args[0]
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		stop := startSpinner("Uploading CSV")
		count, err := a.api.UploadLeadsCSV(ctx, path, file, importCategoryID)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "uploading leads CSV")
		}

		pterm.Printf("✅ Imported %d leads\n", count)
		return nil
	},
}

func init() {
	leadsImportCmd.Flags().StringVar(&importCategoryID, "category", "", "Category id for the imported leads (required)")
}
