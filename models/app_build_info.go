// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"strings"
)

// BuildNotAvailable is reported for build metadata that was not injected
// at link time.
const BuildNotAvailable = "N/A"

// AppBuildInfo is the link-time metadata of the appkit binary. It is
// printed by `appkit version`, used as the root command version and
// served by the mock backend at /api/version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Surrounding whitespace is
// dropped, so a blank -ldflags value counts as not set.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the injected version, or "" when not set.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the injected build timestamp, or "" when not set.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the injected commit hash, or "" when not set.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the version for `appkit --version`, for example
// "v1.2.3 (commit abc123, built 2026-01-01)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)",
		orNotAvailable(a.buildVersion), orNotAvailable(a.buildCommit), orNotAvailable(a.buildDate))
}

// WriteTo writes one "Build <field>: <value>" line per field.
func (a AppBuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNotAvailable(a.buildVersion), orNotAvailable(a.buildDate), orNotAvailable(a.buildCommit))
	return int64(n), err
}

func orNotAvailable(s string) string {
	if s == "" {
		return BuildNotAvailable
	}
	return s
}
