// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"

	errs "datahive/admincli/internal/errors"
)

// loginResponse is the payload of a successful POST /admin/login.
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Login exchanges credentials for a bearer token and the user record.
// A rejected login returns a LoginFailed error carrying the API message;
// no token is issued and no session state changes.
func (c *Client) Login(ctx context.Context, email, password string) (User, string, error) {
	var out loginResponse
	var fail apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&fail).
		Post(loginPath)
	if err != nil {
		return User{}, "", wrapErr("calling login endpoint", err)
	}
	if resp.IsError() {
		return User{}, "", errs.New(errs.LoginFailed, fail.message(resp))
	}
	if out.Token == "" {
		return User{}, "", errs.New(errs.LoginFailed, "no token issued")
	}
	return out.User, out.Token, nil
}
