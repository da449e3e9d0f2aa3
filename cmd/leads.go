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
	leadSearch   string
	leadCategory string
	leadPage     int
	leadPageSize int
)

// leadsCmd lists sales leads. The search term matches name and email
// case-insensitively and phone as a plain substring; combining it with
// --category yields the intersection. Results are paginated locally.
var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List sales leads",
	Long: `The leads command fetches all leads and renders one page of them as a
table. --search narrows by name, email or phone; --category narrows to one
category id; together they intersect. --page selects the page.

Filtering and pagination happen locally on the fetched list; nothing is
cached between invocations.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(ctx); err != nil {
			return err
		}

		stop := startSpinner("Loading leads")
		leads, err := a.api.GetLeads(ctx)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "loading leads")
		}

		filtered := listing.FilterLeadsByCategory(listing.FilterLeads(leads, leadSearch), leadCategory)

		size := leadPageSize
		if size <= 0 {
			size = a.cfg.PageSize
		}
		page, totalPages := listing.Paginate(filtered, leadPage, size)

		if len(filtered) == 0 {
			pterm.Println("No leads found")
			return nil
		}
		if len(page) == 0 {
			pterm.Printf("Page %d is out of range (1-%d)\n", leadPage, totalPages)
			return nil
		}

		data := pterm.TableData{{"Name", "Email", "Phone", "Category", "Status", "Source", "Created"}}
		for _, l := range page {
			data = append(data, []string{
				l.Name, l.Email, l.Phone, l.Category.Name, l.Status, l.Source, formatDate(l.CreatedAt),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		pterm.Printf("Page %d of %d (%d leads)\n", leadPage, totalPages, len(filtered))
		return nil
	},
}

func init() {
	leadsCmd.Flags().StringVar(&leadSearch, "search", "", "Filter by name, email or phone substring")
	leadsCmd.Flags().StringVar(&leadCategory, "category", "", "Filter by category id")
	leadsCmd.Flags().IntVar(&leadPage, "page", 1, "Page number")
	leadsCmd.Flags().IntVar(&leadPageSize, "page-size", 0, "Rows per page (default from config)")
	leadsCmd.AddCommand(leadAddCmd)
	leadsCmd.AddCommand(leadsImportCmd)
	rootCmd.AddCommand(leadsCmd)
}
