// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"context"
	"time"
)

// templateNamesTimeout bounds the template list request; the endpoint is
// cheap and a slow answer usually means a wedged controller.
const templateNamesTimeout = 2 * time.Second

// TemplateNames retrieves the list of configuration template names
// supported by the controller.
//
// Example:
//
//	tn, err := nd.NewTemplateNames(restSend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tn.Refresh(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range tn.Names() {
//	    fmt.Println(name)
//	}
type TemplateNames struct {
	restSend *RestSend
	names    []string
}

// NewTemplateNames creates a TemplateNames bound to the given RestSend.
// Returns a KindConfig error when restSend is nil.
func NewTemplateNames(restSend *RestSend) (*TemplateNames, error) {
	if restSend == nil {
		return nil, configError("templateNames", "restSend must not be nil")
	}
	return &TemplateNames{restSend: restSend}, nil
}

// Refresh retrieves the template names from the controller.
//
// Returns a KindController error when the controller answers with a
// status code other than 200.
func (t *TemplateNames) Refresh(ctx context.Context) error {
	err := t.restSend.Send(ctx, VerbGet, PathTemplates, "",
		Timeout(templateNamesTimeout))
	if err != nil {
		return err
	}

	res := t.restSend.ResponseCurrent()
	if res.StatusCode != 200 {
		return controllerError("templateNames",
			"failed to retrieve template names. RETURN_CODE: %d. MESSAGE: %s",
			res.StatusCode, res.Message)
	}

	t.names = t.names[:0]
	for _, item := range res.GetValue("#.name").Array() {
		if item.String() == "" {
			continue
		}
		t.names = append(t.names, item.String())
	}
	return nil
}

// Names returns the template names retrieved by Refresh
func (t *TemplateNames) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
