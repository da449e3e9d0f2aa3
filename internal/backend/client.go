// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	errs "datahive/admincli/internal/errors"
)

// API endpoint paths, relative to the configured base URL.
const (
	loginPath      = "/admin/login"
	categoriesPath = "/admin/categories"
	leadsPath      = "/admin/leads"
	uploadCSVPath  = "/admin/leads/upload-csv"
	dashboardPath  = "/admin/dashboard"
)

// requestTimeout bounds every API call.
const requestTimeout = 10 * time.Second

// apiError is the error envelope the API returns on non-2xx responses.
type apiError struct {
	Message string `json:"message"`
}

// Client is the authorized transport to the DataHive admin API. Every
// outbound request carries the current bearer token when one is available;
// a 401 on any endpoint except login is reported through the
// session-invalidated hook and surfaced as an Unauthorized error.
type Client struct {
	http        *resty.Client
	tokenSource func() string

	onSessionInvalidated func()
}

// New creates an API client for the given base URL. tokenSource supplies the
// bearer token snapshot for each request; it may return "" when no session is
// held, in which case the request proceeds unauthenticated.
func New(baseURL string, tokenSource func() string) *Client {
	c := &Client{tokenSource: tokenSource}

	c.http = resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if c.tokenSource != nil {
			if token := c.tokenSource(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
		}
		return nil
	})

	// A 401 from the login endpoint is a credential failure, not an expired
	// session; skipping it there keeps a failed login from looping through
	// the invalidation path.
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() != http.StatusUnauthorized {
			return nil
		}
		if isLoginRequest(resp.Request) {
			return nil
		}
		if c.onSessionInvalidated != nil {
			c.onSessionInvalidated()
		}
		return errs.New(errs.Unauthorized, "session rejected by the API")
	})

	return c
}

// OnSessionInvalidated registers the hook fired once per 401 response on a
// protected endpoint. The caller owns what happens next; the transport does
// not retry or replay the failed call.
func (c *Client) OnSessionInvalidated(fn func()) {
	c.onSessionInvalidated = fn
}

// isLoginRequest reports whether the request targeted the login endpoint.
func isLoginRequest(req *resty.Request) bool {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return strings.HasSuffix(req.RawRequest.URL.Path, loginPath)
	}
	return strings.HasSuffix(req.URL, loginPath)
}

// wrapErr normalizes request errors: Unauthorized passes through untouched so
// callers can tell an expired session from an ordinary failure.
func wrapErr(op string, err error) error {
	if errs.IsKind(err, errs.Unauthorized) {
		return err
	}
	return errs.Wrap(errs.RequestFailed, op, err)
}

// message extracts the API error message, falling back to the HTTP status.
func (e *apiError) message(resp *resty.Response) string {
	if e != nil && strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return resp.Status()
}
