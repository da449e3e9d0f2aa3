// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials.
//
// The package helps ensure that bearer tokens and passwords are not
// accidentally exposed in error messages shown to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword  = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]+)(")`)
	reBearer    = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken     = regexp.MustCompile(`(?i)(token=|"token"\s*:\s*")([A-Za-z0-9._-]+)`)
	reAuthPairs = regexp.MustCompile(`(?i)(authorization:\s*)(\S+\s*\S*)`)
)

// Mask replaces sensitive values in the input string with "***".
// Bearer tokens, Authorization headers and password fields are covered.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***$3")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAuthPairs.ReplaceAllString(out, "${1}***")
	// Env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"DATAHIVE_TOKEN", "ADMIN_TOKEN", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
