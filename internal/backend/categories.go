// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"

	errs "datahive/admincli/internal/errors"
)

// GetCategories fetches all categories.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&fail).
		Get(categoriesPath)
	if err != nil {
		return nil, wrapErr("fetching categories", err)
	}
	if resp.IsError() {
		return nil, errs.New(errs.RequestFailed, fail.message(resp))
	}
	return out.Categories, nil
}

// AddCategory creates a category with the given name and description.
func (c *Client) AddCategory(ctx context.Context, name, description string) (Category, error) {
	var out Category
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": name, "description": description}).
		SetResult(&out).
		SetError(&fail).
		Post(categoriesPath)
	if err != nil {
		return Category{}, wrapErr("creating category", err)
	}
	if resp.IsError() {
		return Category{}, errs.New(errs.RequestFailed, fail.message(resp))
	}
	return out, nil
}
