// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"io"
	"path/filepath"

	errs "datahive/admincli/internal/errors"
)

// GetLeads fetches all leads.
func (c *Client) GetLeads(ctx context.Context) ([]Lead, error) {
	var out struct {
		Leads []Lead `json:"leads"`
	}
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&fail).
		Get(leadsPath)
	if err != nil {
		return nil, wrapErr("fetching leads", err)
	}
	if resp.IsError() {
		return nil, errs.New(errs.RequestFailed, fail.message(resp))
	}
	return out.Leads, nil
}

// AddLead creates a single lead.
func (c *Client) AddLead(ctx context.Context, lead NewLead) (Lead, error) {
	var out Lead
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(lead).
		SetResult(&out).
		SetError(&fail).
		Post(leadsPath)
	if err != nil {
		return Lead{}, wrapErr("creating lead", err)
	}
	if resp.IsError() {
		return Lead{}, errs.New(errs.RequestFailed, fail.message(resp))
	}
	return out, nil
}

// UploadLeadsCSV streams a CSV file to the bulk-import endpoint together with
// the target category id. Parsing and validation of the rows is the server's
// job; the client only moves bytes. Returns the number of imported leads.
func (c *Client) UploadLeadsCSV(ctx context.Context, filename string, file io.Reader, categoryID string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filepath.Base(filename), file).
		SetFormData(map[string]string{"categoryId": categoryID}).
		SetResult(&out).
		SetError(&fail).
		Post(uploadCSVPath)
	if err != nil {
		return 0, wrapErr("uploading leads CSV", err)
	}
	if resp.IsError() {
		return 0, errs.New(errs.RequestFailed, fail.message(resp))
	}
	return out.Count, nil
}
