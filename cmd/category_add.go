// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"datahive/admincli/internal/httperrors"
	"datahive/admincli/internal/listing"
)

var (
	newCategoryName        string
	newCategoryDescription string
)

// categoryAddCmd creates a new lead category. The name is checked against the
// existing taxonomy before any create request goes out: a duplicate
// (case-insensitive, surrounding whitespace ignored) is rejected locally.
var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new lead category",
	Long: `The add command creates a category in the taxonomy. Name and description
can be passed as flags or entered interactively. A name that matches an
existing category (ignoring case and surrounding whitespace) is rejected
before any request is sent.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(ctx); err != nil {
			return err
		}

		name := strings.TrimSpace(newCategoryName)
		description := strings.TrimSpace(newCategoryDescription)

		reader := bufio.NewReader(os.Stdin)
		if name == "" {
			fmt.Print("Category name: ")
			line, _ := reader.ReadString('\n')
			name = strings.TrimSpace(line)
		}
		if description == "" {
			fmt.Print("Description: ")
			line, _ := reader.ReadString('\n')
			description = strings.TrimSpace(line)
		}
		if name == "" || description == "" {
			return errors.New("name and description are required")
		}

		stop := startSpinner("Checking existing categories")
		existing, err := a.api.GetCategories(ctx)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "checking existing categories")
		}

		if listing.IsDuplicateCategoryName(existing, name) {
			pterm.Printf("❌ A category named %q already exists\n", name)
			return errors.New("duplicate category name")
		}

		stop = startSpinner("Creating category")
		created, err := a.api.AddCategory(ctx, name, description)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "creating category")
		}

		pterm.Printf("✅ Category %q created\n", created.Name)
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&newCategoryName, "name", "", "Category name")
	categoryAddCmd.Flags().StringVar(&newCategoryDescription, "description", "", "Category description")
}
