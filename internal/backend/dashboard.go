// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"

	errs "datahive/admincli/internal/errors"
)

// GetDashboard fetches the aggregate dashboard payload: counts, the
// current-month summary, the analytics time series and recent payments.
func (c *Client) GetDashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&fail).
		Get(dashboardPath)
	if err != nil {
		return Dashboard{}, wrapErr("fetching dashboard", err)
	}
	if resp.IsError() {
		return Dashboard{}, errs.New(errs.RequestFailed, fail.message(resp))
	}
	return out, nil
}
