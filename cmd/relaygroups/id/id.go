// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// Command returns the "id" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "id",
		Summary: "Parse and format group identifiers",
		Description: `Work with group identifiers of the form <relay-url>'<group-id>.

The relay URL is normalized (lowercase scheme and host, default port
dropped, empty path becomes "/"), and the canonical form strips one
trailing slash from it before the apostrophe delimiter.`,
		Subcommands: []*cli.Command{
			parseCommand(),
			formatCommand(),
		},
	}
}

// groupInfo is the JSON shape of a parsed identifier.
type groupInfo struct {
	Canonical string `json:"canonical"`
	Relay     string `json:"relay"`
	ID        string `json:"id"`
	TopLevel  bool   `json:"top_level"`
}

func describe(groupID ref.GroupID) groupInfo {
	return groupInfo{
		Canonical: groupID.String(),
		Relay:     groupID.Relay().String(),
		ID:        groupID.ID(),
		TopLevel:  groupID.IsTopLevel(),
	}
}

type parseParams struct {
	cli.JSONOutput
}

func parseCommand() *cli.Command {
	var params parseParams
	return &cli.Command{
		Name:    "parse",
		Summary: "Split an identifier into relay and group id",
		Usage:   "relaygroups id parse <identifier> [--json]",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Parse an identifier",
				Command:     "relaygroups id parse \"wss://groups.example.com'pizza-lovers\"",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one identifier, got %d arguments", len(args))
			}
			groupID, err := ref.ParseGroupID(args[0])
			if err != nil {
				return cli.Classify(err)
			}
			logger.Debug("parsed group identifier", "group", groupID.String())

			info := describe(groupID)
			if done, err := params.EmitJSON(ctx, info); done {
				return err
			}
			out := cli.Output(ctx)
			fmt.Fprintf(out, "canonical: %s\n", info.Canonical)
			fmt.Fprintf(out, "relay:     %s\n", info.Relay)
			fmt.Fprintf(out, "id:        %s\n", info.ID)
			fmt.Fprintf(out, "top-level: %t\n", info.TopLevel)
			return nil
		},
	}
}

type formatParams struct {
	cli.JSONOutput
	cli.ConfigParams
	Relay string `json:"relay" flag:"relay,r" desc:"relay URL (default: default_relay from config)"`
}

func formatCommand() *cli.Command {
	var params formatParams
	return &cli.Command{
		Name:    "format",
		Summary: "Build the canonical identifier for a relay and group id",
		Usage:   "relaygroups id format [--relay URL] <group-id>",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "The top-level group of a relay",
				Command:     "relaygroups id format --relay wss://groups.example.com _",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one group id, got %d arguments", len(args))
			}

			var relay ref.URL
			if params.Relay != "" {
				parsed, err := ref.ParseURL(params.Relay)
				if err != nil {
					return cli.Validation("--relay: %w", err)
				}
				relay = parsed
			} else {
				cfg, err := params.LoadConfig()
				if err != nil {
					return err
				}
				configured, err := cfg.Relay()
				if err != nil {
					return cli.Validation("%w", err)
				}
				relay = configured
			}

			groupID, err := ref.NewGroupID(relay, args[0])
			if err != nil {
				return cli.Classify(err)
			}
			logger.Debug("formatted group identifier", "group", groupID.String())

			if done, err := params.EmitJSON(ctx, describe(groupID)); done {
				return err
			}
			fmt.Fprintln(cli.Output(ctx), groupID.String())
			return nil
		},
	}
}
