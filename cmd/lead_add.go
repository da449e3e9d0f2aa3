// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"datahive/admincli/internal/backend"
	"datahive/admincli/internal/httperrors"
)

var newLeadInput backend.NewLead

// leadAddCmd creates a single lead under one category.
var leadAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new sales lead",
	Long: `The add command creates one lead record classified under a category.
Customer name and category id are required; the remaining fields are
optional. A failed create changes nothing locally and can simply be retried
with corrected input.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(ctx); err != nil {
			return err
		}

		if strings.TrimSpace(newLeadInput.CustomerName) == "" {
			return errors.New("--name is required")
		}
		if strings.TrimSpace(newLeadInput.Category) == "" {
			return errors.New("--category is required")
		}

		stop := startSpinner("Creating lead")
		created, err := a.api.AddLead(ctx, newLeadInput)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "creating lead")
		}

		name := created.Name
		if name == "" {
			name = newLeadInput.CustomerName
		}
		pterm.Printf("✅ Lead %q created\n", name)
		return nil
	},
}

func init() {
	leadAddCmd.Flags().StringVar(&newLeadInput.CustomerName, "name", "", "Customer name (required)")
	leadAddCmd.Flags().StringVar(&newLeadInput.CustomerAddress, "address", "", "Customer address")
	leadAddCmd.Flags().StringVar(&newLeadInput.CustomerContact, "contact", "", "Customer phone number")
	leadAddCmd.Flags().StringVar(&newLeadInput.CustomerEmail, "email", "", "Customer email")
	leadAddCmd.Flags().StringVar(&newLeadInput.Website, "website", "", "Customer website")
	leadAddCmd.Flags().StringVar(&newLeadInput.Category, "category", "", "Category id (required)")
}
