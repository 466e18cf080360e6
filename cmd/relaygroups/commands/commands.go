// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete relaygroups CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	conformancecmd "github.com/bureau-foundation/relaygroups/cmd/relaygroups/conformance"
	eventcmd "github.com/bureau-foundation/relaygroups/cmd/relaygroups/event"
	idcmd "github.com/bureau-foundation/relaygroups/cmd/relaygroups/id"
	kindcmd "github.com/bureau-foundation/relaygroups/cmd/relaygroups/kind"
	tagscmd "github.com/bureau-foundation/relaygroups/cmd/relaygroups/tags"
	"github.com/bureau-foundation/relaygroups/lib/version"
)

// Root builds and returns the complete relaygroups CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "relaygroups",
		Description: `relaygroups: tooling for NIP-29 relay-based groups.

Parse and format group identifiers, classify event kinds, encode group
manifests as tag lists, build and sign group events, and run the codec
conformance vectors.`,
		Subcommands: []*cli.Command{
			idcmd.Command(),
			kindcmd.Command(),
			tagscmd.Command(),
			eventcmd.Command(),
			conformancecmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
					if len(args) != 0 {
						return cli.Validation("unexpected arguments: %v", args)
					}
					_, err := fmt.Fprintf(cli.Output(ctx), "relaygroups %s\n", version.Full())
					return err
				},
			},
		},
	}
}
