// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

// Package nd provides a client for the Nexus Dashboard (ND) REST API and
// tooling to translate REST API parameter keys into the GUI labels and
// sections shown by the controller.
//
// The library is built around three layers:
//
//   - Client: owns credentials, the session token, and network I/O.
//     It logs in to the controller, dispatches REST requests, and renews
//     the session token opportunistically on every response.
//   - ResponseHandler: a pure classifier that collapses raw controller
//     responses into a minimal, verb-aware {success, found|changed} result.
//   - RestSend: composes Client and ResponseHandler per logical operation
//     and records response/result history for its consumers.
//
// On top of these, TemplateGet, TemplateNames, and APIToGUI retrieve
// configuration templates from the controller and build the parameter to
// GUI-label mapping.
//
// # Quick Start
//
// Create a client, log in, and send a request:
//
//	client, err := nd.NewClient(
//	    nd.Host("192.168.1.1"),
//	    nd.Username("admin"),
//	    nd.Password("secret"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := client.Login(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Send(ctx, nd.Req{Verb: nd.VerbGet, Path: "/version"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.GetValue("version").String())
//
// Credentials may also come from the environment (ND_IP4, ND_IP6,
// ND_USERNAME, ND_PASSWORD, ND_DOMAIN); options override the environment.
//
// # Response Classification
//
// Raw responses are classified per HTTP verb:
//
//	result, err := nd.Classify(nd.VerbGet, res)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Success && !result.Found {
//	    // Query succeeded; resource does not exist.
//	}
//
// For GET, a 404 "Not Found" is a successful query with Found=false, not an
// error. For POST/PUT/DELETE, an ERROR field in the body is authoritative
// over the status code.
//
// # JSON Manipulation
//
// Use the Body builder for constructing JSON payloads:
//
//	body := nd.Body{}.
//	    Set("fabricName", "f1").
//	    Set("deploy", true)
//	payload, err := body.String()
//
// Responses are queried with gjson paths via Res.GetValue.
//
// # Concurrency
//
// A Client is synchronous and is not safe for concurrent use by multiple
// goroutines. Serialize calls externally, or use one Client per worker.
//
// # References
//
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
package nd
