// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"datahive/admincli/internal/httperrors"
	"datahive/admincli/internal/listing"
)

var (
	categorySearch   string
	categorySortBy   string
	categorySortDesc bool
)

// categoriesCmd lists the category taxonomy. Search, sorting and ordering
// are applied client-side to the fetched list; nothing is cached between
// invocations.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List lead categories",
	Long: `The categories command fetches the category taxonomy and renders it as a
table. Use --search to narrow by name or description (case-insensitive) and
--sort/--desc to control ordering. Filtering and sorting happen locally on
the fetched list.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(ctx); err != nil {
			return err
		}

		stop := startSpinner("Loading categories")
		cats, err := a.api.GetCategories(ctx)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "loading categories")
		}

		sort := listing.Sort{Field: listing.FieldName}
		switch categorySortBy {
		case listing.FieldName, listing.FieldDescription, listing.FieldCreatedAt:
			sort.Field = categorySortBy
		}
		if categorySortDesc {
			sort.Direction = listing.Descending
		}

		cats = listing.SortCategories(listing.FilterCategories(cats, categorySearch), sort)

		if len(cats) == 0 {
			pterm.Println("No categories found")
			return nil
		}

		data := pterm.TableData{{"Name", "Description", "Created", "Status"}}
		for _, c := range cats {
			status := "inactive"
			if c.IsActive {
				status = "active"
			}
			data = append(data, []string{c.Name, c.Description, formatDate(c.CreatedAt), status})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&categorySearch, "search", "", "Filter by name or description substring")
	categoriesCmd.Flags().StringVar(&categorySortBy, "sort", "name", "Sort field: name, description or createdAt")
	categoriesCmd.Flags().BoolVar(&categorySortDesc, "desc", false, "Sort in descending order")
	categoriesCmd.AddCommand(categoryAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}
