// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoNotAvailable = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags at release time.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing missing values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines returns the build info as printable "Build <field>: <value>" lines.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", a.Version),
		fmt.Sprintf("Build date: %s", a.Date),
		fmt.Sprintf("Build commit: %s", a.Commit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return buildInfoNotAvailable
	}
	return v
}
