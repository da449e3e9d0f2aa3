// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"datahive/admincli/internal/backend"
	"datahive/admincli/internal/httperrors"
)

// recentPaymentsShown caps the payment history table.
const recentPaymentsShown = 10

// monthlyPointsShown caps the monthly analytics tables to the latest months.
const monthlyPointsShown = 6

// dashboardCmd renders the aggregate analytics view: totals, the
// current-month summary, monthly revenue/subscription series and recent
// payments. All data comes from a single dashboard endpoint call.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate business analytics",
	Long: `The dashboard command fetches the aggregate analytics payload and renders
it: user/lead/category/subscription totals, the current month's revenue and
subscriptions, the monthly revenue and subscription series, and the most
recent payments.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(ctx); err != nil {
			return err
		}

		stop := startSpinner("Loading dashboard")
		d, err := a.api.GetDashboard(ctx)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, "loading dashboard")
		}

		renderDashboard(d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// renderDashboard prints the dashboard sections in order.
func renderDashboard(d backend.Dashboard) {
	label := pterm.NewStyle(pterm.FgLightCyan)
	value := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	overview := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s",
		label.Sprint("→ Users:         "), value.Sprint(strconv.Itoa(d.Counts.TotalUsers)),
		label.Sprint("→ Leads:         "), value.Sprint(strconv.Itoa(d.Counts.TotalLeads)),
		label.Sprint("→ Categories:    "), value.Sprint(strconv.Itoa(d.Counts.TotalCategories)),
		label.Sprint("→ Subscriptions: "), value.Sprint(strconv.Itoa(d.Counts.ActiveSubscriptions)),
	)
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Overview")).
		WithTopPadding(1).
		WithBottomPadding(1).
		WithLeftPadding(1).
		WithRightPadding(1).
		Println(overview)

	pterm.Println()
	pterm.Printf("%s (%s): revenue %s, %d subscriptions\n",
		pterm.NewStyle(pterm.Bold).Sprint("Current month"),
		d.CurrentMonth.Name,
		formatAmount(d.CurrentMonth.Revenue),
		d.CurrentMonth.Subscriptions,
	)

	if len(d.Analytics.MonthlyRevenue) > 0 {
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.Bold).Sprint("Monthly revenue"))
		data := pterm.TableData{{"Month", "Revenue"}}
		for _, p := range tailMonthlyRevenue(d.Analytics.MonthlyRevenue, monthlyPointsShown) {
			data = append(data, []string{p.MonthName, formatAmount(p.Revenue)})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	if len(d.Analytics.MonthlySubscriptions) > 0 {
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.Bold).Sprint("Monthly subscriptions"))
		data := pterm.TableData{{"Month", "Count"}}
		for _, p := range tailMonthlyCounts(d.Analytics.MonthlySubscriptions, monthlyPointsShown) {
			data = append(data, []string{p.MonthName, strconv.Itoa(p.Count)})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	if len(d.RecentPayments) > 0 {
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.Bold).Sprint("Recent payments"))
		data := pterm.TableData{{"User", "Email", "Amount", "Date", "Description"}}
		payments := d.RecentPayments
		if len(payments) > recentPaymentsShown {
			payments = payments[:recentPaymentsShown]
		}
		for _, p := range payments {
			amount := fmt.Sprintf("%s %s", p.Currency, formatAmount(p.Amount))
			data = append(data, []string{p.UserName, p.UserEmail, amount, formatDate(p.Date), p.Description})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
}

// formatAmount renders a monetary value with two decimals.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// tailMonthlyRevenue returns the last n points of the series.
func tailMonthlyRevenue(points []backend.MonthlyRevenuePoint, n int) []backend.MonthlyRevenuePoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// tailMonthlyCounts returns the last n points of the series.
func tailMonthlyCounts(points []backend.MonthlyCountPoint, n int) []backend.MonthlyCountPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}
