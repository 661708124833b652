// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"context"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// TemplateGet retrieves a single named configuration template from the
// controller.
//
// Example:
//
//	tg, err := nd.NewTemplateGet(restSend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tg.Refresh(ctx, "Easy_Fabric"); err != nil {
//	    log.Fatal(err)
//	}
//	template := tg.Template()
type TemplateGet struct {
	restSend *RestSend
	template string
}

// NewTemplateGet creates a TemplateGet bound to the given RestSend.
// Returns a KindConfig error when restSend is nil.
func NewTemplateGet(restSend *RestSend) (*TemplateGet, error) {
	if restSend == nil {
		return nil, configError("templateGet", "restSend must not be nil")
	}
	return &TemplateGet{restSend: restSend}, nil
}

// Refresh retrieves the named template from the controller.
//
// Returns a KindController error when the controller answers with a
// status code other than 200.
func (t *TemplateGet) Refresh(ctx context.Context, templateName string) error {
	if templateName == "" {
		return configError("templateGet", "templateName must be set before calling Refresh()")
	}

	err := t.restSend.Send(ctx, VerbGet, TemplatePath(templateName), "")
	if err != nil {
		return err
	}

	res := t.restSend.ResponseCurrent()
	if res.StatusCode != 200 {
		return controllerError("templateGet",
			"failed to retrieve template %s. RETURN_CODE: %d. MESSAGE: %s",
			templateName, res.StatusCode, res.Message)
	}

	t.template = res.Data
	return nil
}

// Template returns the raw template JSON retrieved by Refresh.
// Empty until Refresh succeeds.
func (t *TemplateGet) Template() string {
	return t.template
}

// ParamDetail holds the GUI-relevant metadata of a single template
// parameter.
type ParamDetail struct {
	// Name is the REST API parameter key
	Name string

	// Description is the parameter description shown in the GUI
	Description string

	// DisplayName is the GUI field label
	DisplayName string

	// Section is the GUI section (tab). Empty means the parameter lives
	// under General Parameters.
	Section string

	// Internal marks parameters the controller manages itself; these are
	// never shown in the GUI
	Internal bool
}

// ParamInfo parses a template document into per-parameter GUI metadata.
//
// Template parameters carry their GUI metadata in an annotations object:
// DisplayName, Section (both wrapped in embedded quotes), Description, and
// IsInternal. Parameters without annotations fall back to the top-level
// description field.
type ParamInfo struct {
	info  map[string]ParamDetail
	names []string
}

// NewParamInfo parses the given template JSON. Parameters without a name
// are skipped. Returns a KindConfig error when the template is empty.
func NewParamInfo(template string) (*ParamInfo, error) {
	if template == "" {
		return nil, configError("paramInfo", "template must not be empty")
	}

	p := &ParamInfo{info: map[string]ParamDetail{}}
	for _, param := range gjson.Get(template, "parameters").Array() {
		name := param.Get("name").String()
		if name == "" {
			continue
		}
		annotations := param.Get("annotations")
		description := cleanAnnotation(annotations.Get("Description").String())
		if description == "" {
			description = param.Get("description").String()
		}
		detail := ParamDetail{
			Name:        name,
			Description: description,
			DisplayName: cleanAnnotation(annotations.Get("DisplayName").String()),
			Section:     cleanAnnotation(annotations.Get("Section").String()),
			Internal:    annotations.Get("IsInternal").Bool(),
		}
		p.info[name] = detail
		p.names = append(p.names, name)
	}
	sort.Strings(p.names)
	return p, nil
}

// Names returns the parameter names found in the template, sorted
func (p *ParamInfo) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Detail returns the metadata for the named parameter and whether the
// parameter exists in the template.
func (p *ParamInfo) Detail(name string) (ParamDetail, bool) {
	detail, ok := p.info[name]
	return detail, ok
}

// cleanAnnotation strips the escaping and embedded quotes that template
// annotations wrap around their values (e.g. `"\"Advanced\""`).
func cleanAnnotation(value string) string {
	value = strings.ReplaceAll(value, "\\", "")
	return strings.Trim(value, "\"")
}
