// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kind

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
	"github.com/bureau-foundation/relaygroups/lib/tui"
)

// Command returns the "kind" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "kind",
		Summary: "Classify event kinds",
		Description: `Classify Nostr event kinds against the group kind tables.

Moderation kinds (9000-9009) are issued by admins, user kinds
(9021-9022) by ordinary members, and metadata kinds (39000-39003) are
relay-generated addressable events scoped by a "d" tag.`,
		Subcommands: []*cli.Command{
			classifyCommand(),
			listCommand(),
		},
	}
}

// kindInfo is the JSON shape of one classified kind.
type kindInfo struct {
	Kind        int    `json:"kind"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	GroupEvent  bool   `json:"group_event"`
	Addressable bool   `json:"addressable"`
	ScopeTag    string `json:"scope_tag,omitempty"`
}

func describe(kind group.Kind) kindInfo {
	info := kindInfo{
		Kind:        kind.Int(),
		Name:        kind.String(),
		Category:    string(kind.Category()),
		GroupEvent:  kind.IsGroupEvent(),
		Addressable: kind.IsAddressable(),
	}
	switch {
	case kind.IsAddressable():
		info.ScopeTag = group.TagIdentifier
	case kind.IsGroupEvent():
		info.ScopeTag = group.TagGroup
	}
	return info
}

// parseKind accepts a decimal kind number or a catalog name such as
// "put-user".
func parseKind(raw string) (group.Kind, error) {
	if kind, ok := group.ParseKindName(raw); ok {
		return kind, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, cli.Validation("%q is neither a kind number nor a kind name", raw)
	}
	kind, ok := group.KindFromInt(value)
	if !ok {
		return 0, cli.Validation("kind %d is out of range 0-65535", value)
	}
	return kind, nil
}

type classifyParams struct {
	cli.JSONOutput
}

func classifyCommand() *cli.Command {
	var params classifyParams
	return &cli.Command{
		Name:    "classify",
		Summary: "Report the category of one or more kinds",
		Usage:   "relaygroups kind classify <kind>... [--json]",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Classify by number",
				Command:     "relaygroups kind classify 9000 39002 1",
			},
			{
				Description: "Classify by name",
				Command:     "relaygroups kind classify join-request",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("expected at least one kind")
			}
			infos := make([]kindInfo, 0, len(args))
			for _, arg := range args {
				kind, err := parseKind(arg)
				if err != nil {
					return err
				}
				infos = append(infos, describe(kind))
			}
			logger.Debug("classified kinds", "count", len(infos))

			if done, err := params.EmitJSON(ctx, infos); done {
				return err
			}
			out := cli.Output(ctx)
			fmt.Fprint(out, renderTable(tui.NewStyles(tui.DefaultTheme, cli.IsTerminal(out)), infos))
			return nil
		},
	}
}

type listParams struct {
	cli.JSONOutput
	Category string `json:"category" flag:"category,c" desc:"only list kinds in this category (moderation, metadata, user)"`
}

func listCommand() *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List every group kind",
		Usage:   "relaygroups kind list [--category NAME] [--json]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return cli.Validation("unexpected arguments: %v", args)
			}
			switch group.Category(params.Category) {
			case "", group.CategoryModeration, group.CategoryMetadata, group.CategoryUser:
			default:
				return cli.Validation("--category must be moderation, metadata, or user (got %q)", params.Category)
			}

			var infos []kindInfo
			for _, kind := range group.Catalog() {
				if params.Category != "" && string(kind.Category()) != params.Category {
					continue
				}
				infos = append(infos, describe(kind))
			}

			if done, err := params.EmitJSON(ctx, infos); done {
				return err
			}
			out := cli.Output(ctx)
			fmt.Fprint(out, renderTable(tui.NewStyles(tui.DefaultTheme, cli.IsTerminal(out)), infos))
			return nil
		},
	}
}

func renderTable(styles tui.Styles, infos []kindInfo) string {
	rows := make([][]tui.Cell, 0, len(infos))
	for _, info := range infos {
		scope := info.ScopeTag
		if scope == "" {
			scope = "-"
		}
		rows = append(rows, []tui.Cell{
			{Text: strconv.Itoa(info.Kind)},
			{Text: info.Name, Color: styles.Theme.TagName},
			{Text: info.Category, Color: styles.Theme.CategoryColor(group.Category(info.Category))},
			{Text: scope},
		})
	}
	return styles.Table([]string{"KIND", "NAME", "CATEGORY", "SCOPE"}, rows)
}
