// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Body provides a fluent interface for building JSON payloads using sjson
// for path-based manipulation.
//
// The Body builder tracks errors internally to enable method chaining
// while providing error checking through String() or Err().
//
// Example:
//
//	body := nd.Body{}.
//	    Set("fabricName", "f1").
//	    Set("templateName", "Easy_Fabric").
//	    Set("nvPairs.BGP_AS", "65001")
//
//	payload, err := body.String()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Send(ctx, nd.Req{
//	    Verb:    nd.VerbPost,
//	    Path:    "/appcenter/cisco/ndfc/api/v1/rest/control/fabrics",
//	    Payload: payload,
//	})
type Body struct {
	// str contains the JSON string being built
	str string
	// err tracks the first error encountered during building
	err error
}

// Set sets a value at the specified JSON path and returns a new Body
//
// The path uses dot notation for nested fields (e.g., "nvPairs.BGP_AS").
// The value can be any type that sjson supports (string, number, bool, etc.).
//
// Once an error occurs, all subsequent operations are no-ops that preserve
// the error; check it through String() or Err().
//
// Returns the Body for method chaining.
func (b Body) Set(path string, value any) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result}
}

// Delete removes a value at the specified JSON path and returns a new Body
//
// Example:
//
//	body := nd.Body{}.
//	    Set("userName", "admin").
//	    Set("scratch", "tmp").
//	    Delete("scratch")
//
// Returns the Body for method chaining.
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result}
}

// String returns the JSON string and any error encountered during building
//
// Example:
//
//	body := nd.Body{}.Set("domain", "local")
//	payload, err := body.String()
//	if err != nil {
//	    log.Fatal(err)
//	}
func (b Body) String() (string, error) {
	return b.str, b.err
}

// Err returns any error that occurred during the building process
func (b Body) Err() error {
	return b.err
}

// Res returns the JSON string for further processing with gjson
//
// If an error occurred during building, this returns an empty string.
// Use Err() or String() to check for errors.
func (b Body) Res() string {
	if b.err != nil {
		return ""
	}
	return b.str
}

// Bytes returns the JSON byte slice and any error encountered during building
func (b Body) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.str), nil
}
