// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	errs "datahive/admincli/internal/errors"
)

func TestFormatNetworkErrorNil(t *testing.T) {
	if err := FormatNetworkError(nil, "loading leads"); err != nil {
		t.Fatalf("nil error must stay nil, got %v", err)
	}
}

func TestFormatNetworkErrorPassesUnauthorizedThrough(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	in := errs.New(errs.Unauthorized, "session rejected by the API")
	out := FormatNetworkError(in, "loading leads")

	// A rejected session is announced by the invalidation handler; repeating
	// it here as a reachability problem would contradict that message. The
	// error must come back untouched, with its kind intact.
	if out != in {
		t.Fatalf("unauthorized error must pass through unchanged, got %v", out)
	}
	if !errs.IsKind(out, errs.Unauthorized) {
		t.Fatalf("kind lost in transit: %v", out)
	}
	if strings.Contains(out.Error(), "network error") {
		t.Fatalf("unauthorized error picked up a network diagnostic: %v", out)
	}
}

func TestFormatNetworkErrorWrapsConnectivityFailures(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	in := errors.New("dial tcp: connection refused")
	out := FormatNetworkError(in, "loading leads")
	if out == nil {
		t.Fatal("expected a wrapped error")
	}
	if !strings.Contains(out.Error(), "network error") {
		t.Fatalf("connectivity failure should be wrapped for logging, got %v", out)
	}
	if !errors.Is(out, in) {
		t.Fatalf("wrapped error must preserve the cause, got %v", out)
	}
}
