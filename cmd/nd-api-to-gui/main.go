// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

// Command nd-api-to-gui prints the mapping between Nexus Dashboard REST
// API keys for a template and the GUI field names associated with those
// keys.
//
// Usage:
//
//	export ND_IP4="192.168.1.1"
//	export ND_DOMAIN=local
//	export ND_PASSWORD=MySecretPassword
//	export ND_USERNAME=admin
//	nd-api-to-gui --template-name MSD_Fabric
//
// Some template names to try:
//
//   - Default_Network_Universal (Network configuration)
//   - Default_VRF_Universal (VRF configuration)
//   - Easy_Fabric (VXLAN/EVPN fabrics)
//   - Easy_Fabric_Classic (Classic LAN fabric with Nexus switches)
//   - ERSPAN (Encapsulated Remote Switch Port Analyzer)
//   - MSD_Fabric (Multi-Site fabrics)
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
	TemplateName string `help:"Template name to query." default:"MSD_Fabric"`
	IP4          string `help:"Controller IPv4 address." env:"ND_IP4"`
	IP6          string `help:"Controller IPv6 address." env:"ND_IP6"`
	Username     string `help:"Controller username." env:"ND_USERNAME" default:"admin"`
	Password     string `help:"Controller password." env:"ND_PASSWORD"`
	Domain       string `help:"Authentication domain." env:"ND_DOMAIN" default:"local"`
	LogLevel     string `help:"Log level." enum:"debug,info,warn,error,none" default:"warn"`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("nd-api-to-gui"),
		kong.Description("Build a translation mapping from REST API keys to GUI names."))

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

	mapper, err := nd.NewAPIToGUI(restSend, args.TemplateName)
	if err != nil {
		fatal(err)
	}
	if err := mapper.Commit(ctx); err != nil {
		fatal(err)
	}

	names, err := mapper.ParameterNames()
	if err != nil {
		fatal(err)
	}

	fmt.Println("If GUI Section is blank, the parameter is likely located in General Parameters.")
	for _, name := range names {
		info, err := mapper.Info(name)
		if err != nil {
			fatal(err)
		}
		if info.DisplayName == "" {
			continue
		}
		fmt.Printf("API Key: %s:\n", name)
		fmt.Printf("  Description: %s\n", info.Description)
		fmt.Printf("  GUI Section: %s\n", info.Section)
		fmt.Printf("  GUI Field Name: %s\n", info.DisplayName)
		fmt.Println()
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
