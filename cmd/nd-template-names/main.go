// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

// Command nd-template-names prints the names of all default templates
// supported by a Nexus Dashboard controller.
//
// Usage:
//
//	export ND_IP4="192.168.1.1"
//	export ND_DOMAIN=local
//	export ND_PASSWORD=MySecretPassword
//	export ND_USERNAME=admin
//	nd-template-names
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	nd "github.com/allenrobel/nd-api-to-gui"
)

type cli struct {
	IP4      string `help:"Controller IPv4 address." env:"ND_IP4"`
	IP6      string `help:"Controller IPv6 address." env:"ND_IP6"`
	Username string `help:"Controller username." env:"ND_USERNAME" default:"admin"`
	Password string `help:"Controller password." env:"ND_PASSWORD"`
	Domain   string `help:"Authentication domain." env:"ND_DOMAIN" default:"local"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error,none" default:"warn"`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("nd-template-names"),
		kong.Description("Print the template names supported by the controller."))

	if args.IP4 == "" && args.IP6 == "" {
		fatal(fmt.Errorf("controller address required: set --ip4/--ip6 or ND_IP4/ND_IP6"))
	}
	if args.Password == "" {
		fatal(fmt.Errorf("controller password required: set --password or ND_PASSWORD"))
	}

	client, err := nd.NewClient(
		nd.IP4(args.IP4),
		nd.IP6(args.IP6),
		nd.Username(args.Username),
		nd.Password(args.Password),
		nd.Domain(args.Domain),
		nd.WithLogger(newLogger(args.LogLevel)),
	)
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	if err := client.Login(ctx); err != nil {
		fatal(err)
	}

	restSend, err := nd.NewRestSend(client)
	if err != nil {
		fatal(err)
	}

	templateNames, err := nd.NewTemplateNames(restSend)
	if err != nil {
		fatal(err)
	}
	if err := templateNames.Refresh(ctx); err != nil {
		fatal(err)
	}

	for _, name := range templateNames.Names() {
		fmt.Printf("- %s\n", name)
	}
}

// newLogger builds a zerolog-backed nd.Logger writing to stderr
func newLogger(level string) nd.Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().
		Level(zerologLevel(level))
	return nd.NewZerologLogger(zl)
}

// zerologLevel maps a CLI log level string to a zerolog level
func zerologLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error occurred: %v\n", err)
	os.Exit(1)
}
