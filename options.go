// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"strings"
	"time"
)

// Client configuration options using the functional options pattern

// Host sets the controller address, routing it to IP4 or IP6 based on the
// address form. An address containing a colon is treated as IPv6.
func Host(address string) func(*Client) {
	return func(c *Client) {
		if strings.Contains(address, ":") {
			c.ip6 = address
			return
		}
		c.ip4 = address
	}
}

// IP4 sets the controller IPv4 address. Preferred over IP6 when both are set.
func IP4(address string) func(*Client) {
	return func(c *Client) {
		c.ip4 = address
	}
}

// IP6 sets the controller IPv6 address. Used only when IP4 is unset.
func IP6(address string) func(*Client) {
	return func(c *Client) {
		c.ip6 = address
	}
}

// Username sets the username for controller login (default "admin",
// or ND_USERNAME from the environment)
func Username(username string) func(*Client) {
	return func(c *Client) {
		c.username = username
	}
}

// Password sets the password for controller login
// (or ND_PASSWORD from the environment)
func Password(password string) func(*Client) {
	return func(c *Client) {
		c.password = password
	}
}

// Domain sets the authentication domain for controller login
// (default "local", or ND_DOMAIN from the environment)
func Domain(domain string) func(*Client) {
	return func(c *Client) {
		c.domain = domain
	}
}

// OperationTimeout sets the default per-request timeout (default: 30s).
// Individual requests may override it via the Timeout request modifier.
func OperationTimeout(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.Timeout = duration
	}
}

// VerifyCertificate enables or disables TLS certificate verification
// (default: false, because controllers commonly ship self-signed
// certificates)
//
// Example:
//
//	client, _ := nd.NewClient(
//	    nd.Host("nd.example.com"),
//	    nd.VerifyCertificate(true))
func VerifyCertificate(verify bool) func(*Client) {
	return func(c *Client) {
		c.VerifyCertificate = verify
	}
}

// WithLogger configures a custom logger for the client
//
// By default the client uses NoOpLogger, which discards all log messages.
// Payloads logged at Debug level have the password field masked.
//
// Example:
//
//	logger := nd.NewDefaultLogger(nd.LogLevelInfo)
//	client, _ := nd.NewClient(
//	    nd.Host("192.168.1.1"),
//	    nd.WithLogger(logger))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
