// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"context"
	"sort"
	"strings"
)

// ParamGUI describes where a REST API parameter surfaces in the GUI
type ParamGUI struct {
	// Description is the parameter description
	Description string

	// DisplayName is the GUI field label
	DisplayName string

	// Section is the GUI section (tab). Empty means General Parameters.
	Section string
}

// APIToGUI builds the translation table from REST API parameter keys to
// GUI labels and sections for a single template.
//
// Parameters the GUI never shows are excluded from the table:
//   - internal parameters (annotations.IsInternal)
//   - parameters in the "Hidden" section
//   - bookkeeping parameters (names containing "_PREV" or "DCNM_ID")
//
// Example:
//
//	mapper, err := nd.NewAPIToGUI(restSend, "MSD_Fabric")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := mapper.Commit(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	names, _ := mapper.ParameterNames()
//	for _, name := range names {
//	    info, _ := mapper.Info(name)
//	    fmt.Printf("%s -> %s (%s)\n", name, info.DisplayName, info.Section)
//	}
type APIToGUI struct {
	restSend     *RestSend
	templateName string
	mapping      map[string]ParamGUI
	names        []string
	committed    bool
}

// NewAPIToGUI creates an APIToGUI for the named template.
// Returns a KindConfig error when restSend is nil or templateName is empty.
func NewAPIToGUI(restSend *RestSend, templateName string) (*APIToGUI, error) {
	if restSend == nil {
		return nil, configError("apiToGui", "restSend must not be nil")
	}
	if templateName == "" {
		return nil, configError("apiToGui", "templateName must be set")
	}
	return &APIToGUI{
		restSend:     restSend,
		templateName: templateName,
		mapping:      map[string]ParamGUI{},
	}, nil
}

// Commit retrieves the template from the controller and builds the
// parameter-to-GUI mapping. Accessors fail until Commit has succeeded.
func (a *APIToGUI) Commit(ctx context.Context) error {
	templateGet, err := NewTemplateGet(a.restSend)
	if err != nil {
		return err
	}
	if err := templateGet.Refresh(ctx, a.templateName); err != nil {
		return err
	}

	paramInfo, err := NewParamInfo(templateGet.Template())
	if err != nil {
		return err
	}

	a.mapping = map[string]ParamGUI{}
	a.names = a.names[:0]
	for _, name := range paramInfo.Names() {
		detail, _ := paramInfo.Detail(name)
		if skipParameter(detail) {
			continue
		}
		a.mapping[name] = ParamGUI{
			Description: detail.Description,
			DisplayName: detail.DisplayName,
			Section:     detail.Section,
		}
		a.names = append(a.names, name)
	}
	sort.Strings(a.names)
	a.committed = true
	return nil
}

// skipParameter reports whether a parameter has no GUI presence
func skipParameter(detail ParamDetail) bool {
	if detail.Internal {
		return true
	}
	if detail.Section == "Hidden" {
		return true
	}
	if strings.Contains(detail.Name, "_PREV") {
		return true
	}
	if strings.Contains(detail.Name, "DCNM_ID") {
		return true
	}
	return false
}

// TemplateName returns the template this mapping describes
func (a *APIToGUI) TemplateName() string {
	return a.templateName
}

// ParameterNames returns the mapped parameter names, sorted.
// Returns a KindConfig error when called before Commit.
func (a *APIToGUI) ParameterNames() ([]string, error) {
	if !a.committed {
		return nil, configError("apiToGui", "call Commit() before accessing ParameterNames()")
	}
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out, nil
}

// Info returns the GUI metadata for the named parameter. Parameters
// absent from the mapping (unknown, or excluded as non-GUI) yield a zero
// ParamGUI. Returns a KindConfig error when called before Commit.
func (a *APIToGUI) Info(name string) (ParamGUI, error) {
	if !a.committed {
		return ParamGUI{}, configError("apiToGui", "call Commit() before accessing Info()")
	}
	return a.mapping[name], nil
}

// Mapping returns a copy of the full parameter-to-GUI table.
// Returns a KindConfig error when called before Commit.
func (a *APIToGUI) Mapping() (map[string]ParamGUI, error) {
	if !a.committed {
		return nil, configError("apiToGui", "call Commit() before accessing Mapping()")
	}
	out := make(map[string]ParamGUI, len(a.mapping))
	for name, info := range a.mapping {
		out[name] = info
	}
	return out, nil
}
