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
)

func createCommand() *cli.Command {
	var params ManifestParams
	return &cli.Command{
		Name:    "create",
		Summary: "Create a group (kind 9007)",
		Usage:   "relaygroups event create [<group>] [--manifest FILE]",
		Description: `Create a group. The initial metadata comes from the manifest's
metadata section; without a manifest the group is public and open.
The group argument may be omitted when the manifest names the group.`,
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Create a group described by a manifest",
				Command:     "relaygroups event create --manifest pizza.yaml",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params.SigningParams, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				loaded, groupID, err := params.manifestGroup(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				return builder.CreateGroup(groupID, loaded.Metadata)
			})
		},
	}
}

func editCommand() *cli.Command {
	var params ManifestParams
	return &cli.Command{
		Name:    "edit",
		Summary: "Replace the group metadata (kind 9002)",
		Usage:   "relaygroups event edit [<group>] --manifest FILE",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if params.Manifest == "" {
				return cli.Validation("--manifest is required")
			}
			return emit(ctx, &params.SigningParams, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				loaded, groupID, err := params.manifestGroup(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				return builder.EditMetadata(groupID, loaded.Metadata)
			})
		},
	}
}

type putUserParams struct {
	SigningParams
	Roles []string `json:"roles" flag:"role,r" desc:"role to grant (repeatable)"`
}

func putUserCommand() *cli.Command {
	var params putUserParams
	return &cli.Command{
		Name:    "put-user",
		Summary: "Add a user to the group (kind 9000)",
		Usage:   "relaygroups event put-user <group> <pubkey> [--role NAME]...",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Add a moderator",
				Command:     "relaygroups event put-user pizza-lovers <pubkey> --role moderator",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params.SigningParams, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 1, "a public key"); err != nil {
					return nostr.Event{}, err
				}
				publicKey, err := parsePublicKey(rest[0])
				if err != nil {
					return nostr.Event{}, err
				}
				return builder.PutUser(groupID, publicKey, params.Roles...)
			})
		},
	}
}

func removeUserCommand() *cli.Command {
	var params SigningParams
	return &cli.Command{
		Name:    "remove-user",
		Summary: "Remove a user from the group (kind 9001)",
		Usage:   "relaygroups event remove-user <group> <pubkey>",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 1, "a public key"); err != nil {
					return nostr.Event{}, err
				}
				publicKey, err := parsePublicKey(rest[0])
				if err != nil {
					return nostr.Event{}, err
				}
				return builder.RemoveUser(groupID, publicKey)
			})
		},
	}
}

func deleteEventCommand() *cli.Command {
	var params SigningParams
	return &cli.Command{
		Name:    "delete-event",
		Summary: "Delete an event from the group (kind 9005)",
		Usage:   "relaygroups event delete-event <group> <event-id>",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 1, "an event id"); err != nil {
					return nostr.Event{}, err
				}
				eventID, err := parseEventID(rest[0])
				if err != nil {
					return nostr.Event{}, err
				}
				return builder.DeleteEvent(groupID, eventID)
			})
		},
	}
}

func deleteGroupCommand() *cli.Command {
	var params SigningParams
	return &cli.Command{
		Name:    "delete-group",
		Summary: "Delete the group (kind 9008)",
		Usage:   "relaygroups event delete-group <group>",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return emit(ctx, &params, logger, func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error) {
				groupID, rest, err := groupArgument(args, cfg)
				if err != nil {
					return nostr.Event{}, err
				}
				if err := expectArgs(rest, 0, ""); err != nil {
					return nostr.Event{}, err
				}
				return builder.DeleteGroup(groupID)
			})
		},
	}
}

type inviteParams struct {
	SigningParams
	Code string `json:"code" flag:"code" desc:"invite code (default: assigned by the relay)"`
}

func inviteCommand() *cli.Command {
	var params inviteParams
	return &cli.Command{
		Name:    "invite",
		Summary: "Create an invite code (kind 9009)",
		Usage:   "relaygroups event invite <group> [--code CODE]",
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
				return builder.CreateInvite(groupID, params.Code)
			})
		},
	}
}
