// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// InvalidJSONKey is the sentinel key under which a non-JSON response body
// is wrapped in Res.Data. Some controller endpoints return plain text or
// HTML (for example, proxy error pages); wrapping keeps Data queryable.
const InvalidJSONKey = "INVALID_JSON"

// Res represents a raw controller response
//
// A Res is immutable after construction. StatusCode and Message are always
// populated for a response produced by Client.Send; Data holds the response
// body as a JSON document, with non-JSON bodies wrapped under InvalidJSONKey.
type Res struct {
	// StatusCode is the HTTP status code returned by the controller
	StatusCode int

	// Message is the HTTP reason phrase (e.g. "OK", "Not Found")
	Message string

	// Data is the response body as a raw JSON string
	Data string

	// Verb is the HTTP verb used for the originating request
	Verb string

	// Path is the endpoint path of the originating request
	Path string
}

// GetValue retrieves a value from the response body using a gjson path.
//
// Example paths against a template response:
//   - "parameters.#" - number of template parameters
//   - "parameters.0.name" - name of the first parameter
//   - "parameters.#.name" - names of all parameters
//
// Returns gjson.Result which can be converted to specific types:
//   - result.String() for string values
//   - result.Int() for integer values
//   - result.Bool() for boolean values
//   - result.Array() for array values
//
// Example:
//
//	res, err := client.Send(ctx, nd.Req{Verb: nd.VerbGet, Path: nd.TemplatePath("Easy_Fabric")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name := res.GetValue("parameters.0.name").String()
func (r Res) GetValue(path string) gjson.Result {
	if r.Data == "" {
		return gjson.Result{}
	}
	return gjson.Get(r.Data, path)
}

// JSON returns the full response record as a JSON string using the
// controller response conventions (RETURN_CODE, MESSAGE, DATA, METHOD,
// REQUEST_PATH). This is useful for debugging and logging.
// Returns an empty string if marshaling fails.
//
// Example:
//
//	res, _ := client.Send(ctx, nd.Req{Verb: nd.VerbGet, Path: "/version"})
//	fmt.Println(res.JSON())
func (r Res) JSON() string {
	out, err := sjson.Set("", "RETURN_CODE", r.StatusCode)
	if err != nil {
		return ""
	}
	out, err = sjson.Set(out, "MESSAGE", r.Message)
	if err != nil {
		return ""
	}
	data := r.Data
	if data == "" || !gjson.Valid(data) {
		data = "{}"
	}
	out, err = sjson.SetRaw(out, "DATA", data)
	if err != nil {
		return ""
	}
	out, err = sjson.Set(out, "METHOD", r.Verb)
	if err != nil {
		return ""
	}
	out, err = sjson.Set(out, "REQUEST_PATH", r.Path)
	if err != nil {
		return ""
	}
	return out
}
