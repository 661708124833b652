// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import "fmt"

// HTTP verb constants for REST requests
const (
	// VerbGet retrieves a resource without mutating controller state
	VerbGet = "GET"

	// VerbPost creates a resource on the controller
	VerbPost = "POST"

	// VerbPut updates a resource on the controller
	VerbPut = "PUT"

	// VerbDelete removes a resource from the controller
	VerbDelete = "DELETE"
)

// ValidVerbs contains the list of valid HTTP verbs
var ValidVerbs = []string{
	VerbDelete,
	VerbGet,
	VerbPost,
	VerbPut,
}

// ValidateVerb checks if the verb is valid
//
// Returns an error if the verb is not one of the supported values.
//
// Example:
//
//	if err := nd.ValidateVerb("GET"); err != nil {
//	    log.Fatal(err)
//	}
func ValidateVerb(verb string) error {
	for _, valid := range ValidVerbs {
		if verb == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid verb: %s (valid values: DELETE, GET, POST, PUT)", verb)
}
