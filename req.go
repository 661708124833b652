// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"fmt"
	"time"
)

// Input validation constants
const (
	// MaxPayloadSize is the maximum size for a request payload in bytes (10MB)
	MaxPayloadSize = 10 * 1024 * 1024

	// MaxPathLength is the maximum length for an endpoint path (2048 characters)
	MaxPathLength = 2048
)

// Req represents a single pending REST request
//
// A Req is constructed fresh per call and is not retained by the Client
// after Send returns, so a payload containing credentials never outlives
// the call that used it.
//
// Example:
//
//	res, err := client.Send(ctx, nd.Req{
//	    Verb: nd.VerbGet,
//	    Path: nd.PathTemplates,
//	})
type Req struct {
	// Verb is the HTTP method: one of GET, POST, PUT, DELETE
	Verb string

	// Path is the endpoint path, absolute or relative to the controller root
	Path string

	// Payload is an optional JSON request body
	Payload string

	// Timeout overrides the client's default timeout for this request
	Timeout time.Duration
}

// validate checks the request for a valid verb, a well-formed path, and a
// payload within size limits. Returns a KindConfig error on failure.
func (r Req) validate() error {
	if err := ValidateVerb(r.Verb); err != nil {
		return configError("send", "%s", err.Error())
	}
	if err := validatePath(r.Path); err != nil {
		return configError("send", "%s", err.Error())
	}
	if len(r.Payload) > MaxPayloadSize {
		return configError("send", "payload size exceeds maximum of %d bytes (got %d bytes)",
			MaxPayloadSize, len(r.Payload))
	}
	return nil
}

// validatePath validates an endpoint path
//
// Checks:
//   - Path is not empty
//   - Path length does not exceed MaxPathLength
//   - Path does not contain malicious patterns (null bytes, traversal)
//
// Returns an error if the path is invalid with a descriptive message.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if len(path) > MaxPathLength {
		return fmt.Errorf("path exceeds maximum length of %d characters: %s",
			MaxPathLength, truncatePath(path))
	}

	// Check for null bytes
	for i := 0; i < len(path); i++ {
		if path[i] == 0 {
			return fmt.Errorf("path contains null byte at position %d", i)
		}
	}

	// Check for path traversal patterns
	for i := 0; i+3 < len(path); i++ {
		if path[i] == '/' && path[i+1] == '.' && path[i+2] == '.' && path[i+3] == '/' {
			return fmt.Errorf("path contains suspicious traversal pattern '/../' at position %d", i)
		}
	}

	return nil
}

// truncatePath truncates a path for error messages
//
// Returns the first 100 characters of the path followed by "..." if longer.
func truncatePath(path string) string {
	if len(path) <= 100 {
		return path
	}
	return path[:100] + "..."
}

// Timeout returns a request modifier that sets a custom timeout for a
// single operation, overriding the client's default.
//
// Example:
//
//	err := restSend.Send(ctx, nd.VerbGet, nd.PathTemplates, "",
//	    nd.Timeout(2*time.Second))
func Timeout(duration time.Duration) func(*Req) {
	return func(req *Req) {
		req.Timeout = duration
	}
}
