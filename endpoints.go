// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

// Controller endpoint paths
const (
	// PathLogin is the authentication endpoint
	PathLogin = "/login"

	// PathRefresh is the token refresh endpoint
	PathRefresh = "/refresh"

	// PathTemplates lists the configuration templates supported by the
	// controller
	PathTemplates = "/appcenter/cisco/ndfc/api/v1/configtemplate/rest/config/templates"
)

// TemplatePath returns the endpoint path for a single named template
func TemplatePath(name string) string {
	return PathTemplates + "/" + name
}
