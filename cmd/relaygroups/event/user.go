// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"log/slog"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/config"
	"github.com/bureau-foundation/relaygroups/lib/groupevent"
	"github.com/bureau-foundation/relaygroups/lib/ref"
)

type joinParams struct {
	SigningParams
	Reason string `json:"reason" flag:"reason" desc:"message to the group admins"`
	Code   string `json:"code" flag:"code" desc:"invite code for a closed group"`
}

func joinCommand() *cli.Command {
	var params joinParams
	return &cli.Command{
		Name:    "join",
		Summary: "Ask to join the group (kind 9021)",
		Usage:   "relaygroups event join <group> [--reason TEXT] [--code CODE]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params.SigningParams, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 0, ""); err != nil {
					return nostr.Event{}, err
				}
				return builder.JoinRequest(groupID, params.Reason, params.Code)
			})
		},
	}
}

type leaveParams struct {
	SigningParams
	Reason string `json:"reason" flag:"reason" desc:"message to the group admins"`
}

func leaveCommand() *cli.Command {
	var params leaveParams
	return &cli.Command{
		Name:    "leave",
		Summary: "Ask to leave the group (kind 9022)",
		Usage:   "relaygroups event leave <group> [--reason TEXT]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params.SigningParams, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 0, ""); err != nil {
					return nostr.Event{}, err
				}
				return builder.LeaveRequest(groupID, params.Reason)
			})
		},
	}
}

type messageParams struct {
	SigningParams
	Previous []string `json:"previous" flag:"previous" desc:"id of a recent group event, for the previous tag (repeatable)"`
}

func messageCommand() *cli.Command {
	var params messageParams
	return &cli.Command{
		Name:    "message",
		Summary: "Post a chat message to the group (kind 9)",
		Usage:   "relaygroups event message <group> <content> [--previous EVENT-ID]...",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params.SigningParams, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 1, "the message content"); err != nil {
					return nostr.Event{}, err
				}
				previous := make([]ref.EventID, 0, len(params.Previous))
				for _, raw := range params.Previous {
					eventID, err := parseEventID(raw)
					if err != nil {
						return nostr.Event{}, err
					}
					previous = append(previous, eventID)
				}
				return builder.Message(groupID, rest[0], previous...)
			})
		},
	}
}
