// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tags

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/codec"
	"github.com/bureau-foundation/relaygroups/lib/conformance"
	"github.com/bureau-foundation/relaygroups/lib/manifest"
	"github.com/bureau-foundation/relaygroups/lib/tui"
)

// Output formats accepted by --output. json, text and cbor match the
// config file's output setting; diag is CBOR diagnostic notation.
const (
	formatJSON = "json"
	formatText = "text"
	formatCBOR = "cbor"
	formatDiag = "diag"
)

// section is one encodable part of a manifest.
type section struct {
	name    string
	summary string
	encode  func(*manifest.Manifest) nostr.Tags
}

var sections = []section{
	{
		name:    "metadata",
		summary: "Encode the group metadata (name, description, image, privacy, closed)",
		encode:  func(m *manifest.Manifest) nostr.Tags { return m.Metadata.Tags() },
	},
	{
		name:    "roles",
		summary: "Encode the role definitions",
		encode:  func(m *manifest.Manifest) nostr.Tags { return m.Roles.Tags() },
	},
	{
		name:    "admins",
		summary: "Encode the admin list, each admin followed by its roles",
		encode:  func(m *manifest.Manifest) nostr.Tags { return m.Admins.Tags() },
	},
	{
		name:    "members",
		summary: "Encode the member list",
		encode:  func(m *manifest.Manifest) nostr.Tags { return m.Members.Tags() },
	},
}

// Command returns the "tags" command group.
func Command() *cli.Command {
	subcommands := make([]*cli.Command, 0, len(sections)+1)
	for _, s := range sections {
		subcommands = append(subcommands, sectionCommand(s))
	}
	subcommands = append(subcommands, decodeCommand())
	return &cli.Command{
		Name:    "tags",
		Summary: "Encode manifest sections as tag lists",
		Description: `Read a group manifest (YAML, or JSONC for .json/.jsonc files) and
print one section as the tag list a relay would put on the
corresponding event.

The output format comes from --output, then from the config file's
output setting. --digest prints the BLAKE3 digest of the tag list's
deterministic CBOR encoding instead of the list itself. "tags decode"
reads a CBOR tag list back.`,
		Subcommands: subcommands,
	}
}

type sectionParams struct {
	cli.ConfigParams
	Output string `json:"output" flag:"output,o" desc:"output format: json, text, cbor, or diag (default: output from config)"`
	Digest bool   `json:"digest" flag:"digest" desc:"print the tag list digest instead of the tags"`
}

func sectionCommand(s section) *cli.Command {
	var params sectionParams
	return &cli.Command{
		Name:    s.name,
		Summary: s.summary,
		Usage:   fmt.Sprintf("relaygroups tags %s <manifest> [--output FORMAT] [--digest]", s.name),
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Print the tags as JSON",
				Command:     fmt.Sprintf("relaygroups tags %s group.yaml", s.name),
			},
			{
				Description: "Inspect the CBOR encoding",
				Command:     fmt.Sprintf("relaygroups tags %s group.yaml --output diag", s.name),
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one manifest path, got %d arguments", len(args))
			}

			format := params.Output
			if format == "" {
				cfg, err := params.LoadConfig()
				if err != nil {
					return err
				}
				format = cfg.Output
			}
			switch format {
			case formatJSON, formatText, formatCBOR, formatDiag:
			default:
				return cli.Validation("--output must be json, text, cbor, or diag (got %q)", format)
			}

			loaded, err := manifest.ReadFile(args[0])
			if err != nil {
				return cli.ClassifyInput(err)
			}
			tags := s.encode(loaded)
			logger.Debug("encoded manifest section",
				"section", s.name,
				"manifest", args[0],
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
			return write(out, format, tags)
		},
	}
}

// write renders tags to w in the given format.
func write(w io.Writer, format string, tags nostr.Tags) error {
	switch format {
	case formatJSON:
		return cli.WriteJSON(w, tags)
	case formatCBOR:
		if err := codec.NewEncoder(w).Encode(tags); err != nil {
			return cli.Internal("encoding CBOR: %w", err)
		}
		return nil
	case formatDiag:
		data, err := codec.Marshal(tags)
		if err != nil {
			return cli.Internal("encoding CBOR: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return cli.Internal("diagnosing CBOR: %w", err)
		}
		_, err = fmt.Fprintln(w, notation)
		return err
	default:
		_, err := io.WriteString(w, renderText(tui.NewStyles(tui.DefaultTheme, cli.IsTerminal(w)), tags))
		return err
	}
}

// renderText prints one tag per line: the tag name followed by its
// values. Values that are empty or contain whitespace or quotes are
// quoted.
func renderText(styles tui.Styles, tags nostr.Tags) string {
	var builder strings.Builder
	for _, tag := range tags {
		if len(tag) == 0 {
			continue
		}
		builder.WriteString(styles.Color(tag[0], styles.Theme.TagName))
		for _, value := range tag[1:] {
			builder.WriteByte(' ')
			builder.WriteString(quoteIfNeeded(value))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func quoteIfNeeded(value string) string {
	if value == "" || strings.ContainsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || !unicode.IsPrint(r)
	}) {
		return strconv.Quote(value)
	}
	return value
}
