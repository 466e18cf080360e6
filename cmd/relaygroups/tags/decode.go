// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tags

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/codec"
	"github.com/bureau-foundation/relaygroups/lib/conformance"
)

type decodeParams struct {
	Output string `json:"output" flag:"output,o" desc:"output format: json, text, or diag" default:"json"`
	Digest bool   `json:"digest" flag:"digest" desc:"print the tag list digest instead of the tags"`
}

func decodeCommand() *cli.Command {
	var params decodeParams
	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a CBOR tag list",
		Description: `Read a file holding one CBOR-encoded tag list (as written by
"relaygroups tags <section> --output cbor") and print it.

--digest re-encodes the list deterministically and prints its digest,
which matches the digest of the section it was produced from.`,
		Usage:  "relaygroups tags decode <file> [--output FORMAT] [--digest]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Print an encoded member list as JSON",
				Command:     "relaygroups tags decode members.cbor",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one CBOR file, got %d arguments", len(args))
			}
			switch params.Output {
			case formatJSON, formatText, formatDiag:
			default:
				return cli.Validation("--output must be json, text, or diag (got %q)", params.Output)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return cli.ClassifyInput(err)
			}
			var tags nostr.Tags
			if err := codec.Unmarshal(data, &tags); err != nil {
				return cli.Validation("%s: not a CBOR tag list: %w", args[0], err)
			}
			logger.Debug("decoded tag list",
				"file", args[0],
				"tag_count", len(tags),
			)

			out := cli.Output(ctx)
			if params.Digest {
				digest, err := conformance.Digest(tags)
				if err != nil {
					return cli.Internal("%w", err)
				}
				_, err = fmt.Fprintln(out, digest)
				return err
			}
			return write(out, params.Output, tags)
		},
	}
}
