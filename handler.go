// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

// Result is the normalized outcome of classifying a raw controller
// response. The meaning of the fields depends on the request verb:
//
//   - GET: Found (resource exists) and Success (the query itself succeeded)
//   - POST/PUT/DELETE: Changed (controller state was mutated) and Success
//
// The record is intentionally minimal so downstream logic need not branch
// on verb beyond reading the two relevant booleans.
type Result struct {
	// Success indicates the call itself succeeded
	Success bool

	// Found indicates the resource exists (GET only)
	Found bool

	// Changed indicates controller state was mutated (POST/PUT/DELETE only)
	Changed bool
}

// ResponseHandler classifies raw controller responses into verb-aware
// normalized results. It holds no network state: set the verb and the
// response, call Commit, then read Result.
//
// Example:
//
//	handler := &nd.ResponseHandler{}
//	if err := handler.SetVerb(nd.VerbGet); err != nil {
//	    log.Fatal(err)
//	}
//	if err := handler.SetResponse(res); err != nil {
//	    log.Fatal(err)
//	}
//	if err := handler.Commit(); err != nil {
//	    log.Fatal(err)
//	}
//	result := handler.Result()
type ResponseHandler struct {
	verb    string
	res     Res
	verbSet bool
	resSet  bool
	result  Result
}

// successStatusCodes are the GET status codes accepted as a successful
// query. 404 is included because absence is a valid query result for the
// controller's idempotent GET flows.
var successStatusCodes = map[int]bool{
	200: true,
	404: true,
}

// SetVerb sets the request verb used to select classification rules.
// Returns a KindClassification error for verbs outside GET/POST/PUT/DELETE.
func (h *ResponseHandler) SetVerb(verb string) error {
	if err := ValidateVerb(verb); err != nil {
		return classificationError("setVerb", "%s", err.Error())
	}
	h.verb = verb
	h.verbSet = true
	return nil
}

// SetResponse sets the raw controller response to classify. The response
// must carry a status code and a non-empty message; the classifier rejects
// inputs missing either.
func (h *ResponseHandler) SetResponse(res Res) error {
	if res.Message == "" {
		return classificationError("setResponse", "response must have a message, got: %s", res.JSON())
	}
	if res.StatusCode == 0 {
		return classificationError("setResponse", "response must have a status code, got: %s", res.JSON())
	}
	h.res = res
	h.resSet = true
	return nil
}

// Commit classifies the response and stores the normalized result.
// Returns a KindClassification error if Commit is invoked before both the
// verb and the response are set.
func (h *ResponseHandler) Commit() error {
	if !h.resSet {
		return classificationError("commit", "response must be set prior to calling Commit()")
	}
	if !h.verbSet {
		return classificationError("commit", "verb must be set prior to calling Commit()")
	}
	if h.verb == VerbGet {
		h.result = h.getResult()
	} else {
		h.result = h.mutateResult()
	}
	return nil
}

// Result returns the normalized outcome computed by Commit
func (h *ResponseHandler) Result() Result {
	return h.result
}

// getResult classifies GET responses.
//
// A 404 "Not Found" is a successful query whose resource is absent, not an
// error; callers must be able to distinguish "query succeeded, resource
// absent" from "query failed".
func (h *ResponseHandler) getResult() Result {
	if h.res.StatusCode == 404 && h.res.Message == "Not Found" {
		return Result{Found: false, Success: true}
	}
	if !successStatusCodes[h.res.StatusCode] || h.res.Message != "OK" {
		return Result{Found: false, Success: false}
	}
	return Result{Found: true, Success: true}
}

// mutateResult classifies POST, PUT, and DELETE responses.
//
// A non-empty ERROR field in the body is authoritative over the status
// code; some controller versions return 200 with an embedded error object.
func (h *ResponseHandler) mutateResult() Result {
	if errField := h.res.GetValue("ERROR"); errField.Exists() && errField.String() != "" {
		return Result{Success: false, Changed: false}
	}
	if h.res.Message != "OK" {
		return Result{Success: false, Changed: false}
	}
	return Result{Success: true, Changed: true}
}

// Classify is a convenience wrapper that runs the full ResponseHandler
// contract in one call.
//
// Example:
//
//	result, err := nd.Classify(nd.VerbGet, res)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Classify(verb string, res Res) (Result, error) {
	handler := &ResponseHandler{}
	if err := handler.SetVerb(verb); err != nil {
		return Result{}, err
	}
	if err := handler.SetResponse(res); err != nil {
		return Result{}, err
	}
	if err := handler.Commit(); err != nil {
		return Result{}, err
	}
	return handler.Result(), nil
}
