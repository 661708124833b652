// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import "context"

// RestSend composes a Client and a ResponseHandler per logical operation:
// it dispatches a request, classifies the raw response, and records both
// for its consumers.
//
// RestSend performs no retries and no backoff; a failed call leaves the
// underlying session usable, so callers may simply call Send again.
//
// Example:
//
//	restSend, err := nd.NewRestSend(client)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := restSend.Send(ctx, nd.VerbGet, nd.PathTemplates, ""); err != nil {
//	    log.Fatal(err)
//	}
//	if restSend.ResultCurrent().Success {
//	    names := restSend.ResponseCurrent().GetValue("#.name")
//	    // ...
//	}
type RestSend struct {
	client *Client
	logger Logger

	responseCurrent Res
	resultCurrent   Result
	responses       []Res
	results         []Result
}

// NewRestSend creates a RestSend bound to the given client.
// Returns a KindConfig error when client is nil.
func NewRestSend(client *Client, opts ...func(*RestSend)) (*RestSend, error) {
	if client == nil {
		return nil, configError("restSend", "client must not be nil")
	}
	r := &RestSend{
		client: client,
		logger: client.logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// WithRestSendLogger overrides the logger inherited from the client
func WithRestSendLogger(logger Logger) func(*RestSend) {
	return func(r *RestSend) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Send dispatches a single request and classifies its response.
//
// payload may be empty for requests without a body. Request modifiers
// (e.g. nd.Timeout) adjust the pending request before dispatch. On
// success the raw response and normalized result become ResponseCurrent
// and ResultCurrent, and both are appended to the accumulated histories.
//
// Errors from the client (configuration, transport) and from
// classification propagate unchanged; in that case current and
// accumulated state are left as they were.
func (r *RestSend) Send(ctx context.Context, verb, path, payload string, mods ...func(*Req)) error {
	req := Req{
		Verb:    verb,
		Path:    path,
		Payload: payload,
	}
	for _, mod := range mods {
		mod(&req)
	}

	res, err := r.client.Send(ctx, req)
	if err != nil {
		return err
	}

	result, err := Classify(verb, res)
	if err != nil {
		return err
	}

	r.responseCurrent = res
	r.resultCurrent = result
	r.responses = append(r.responses, res)
	r.results = append(r.results, result)

	r.logger.Debug("request classified",
		"verb", verb,
		"path", path,
		"status", res.StatusCode,
		"success", result.Success)

	return nil
}

// ResponseCurrent returns the raw response of the most recent successful Send
func (r *RestSend) ResponseCurrent() Res {
	return r.responseCurrent
}

// ResultCurrent returns the normalized result of the most recent successful Send
func (r *RestSend) ResultCurrent() Result {
	return r.resultCurrent
}

// Responses returns a copy of all recorded raw responses, oldest first
func (r *RestSend) Responses() []Res {
	out := make([]Res, len(r.responses))
	copy(out, r.responses)
	return out
}

// Results returns a copy of all recorded normalized results, oldest first
func (r *RestSend) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}
