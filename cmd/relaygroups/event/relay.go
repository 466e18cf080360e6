// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/config"
	"github.com/bureau-foundation/relaygroups/lib/groupevent"
	"github.com/bureau-foundation/relaygroups/lib/manifest"
	"github.com/bureau-foundation/relaygroups/lib/ref"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

// relayBuildFunc builds a relay-generated event from a manifest.
type relayBuildFunc func(builder *groupevent.Builder, groupID ref.GroupID, loaded *manifest.Manifest) (nostr.Event, error)

// relayEventCommand returns a command for one of the addressable
// events a relay publishes about its groups. The content comes from
// the manifest and the event is signed with the relay's key.
func relayEventCommand(name string, kind group.Kind, summary string, build relayBuildFunc) *cli.Command {
	var params ManifestParams
	return &cli.Command{
		Name:    name,
		Summary: fmt.Sprintf("%s (kind %d, relay-signed)", summary, kind.Int()),
		Usage:   fmt.Sprintf("relaygroups event %s [<group>] --manifest FILE", name),
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
				return build(builder, groupID, loaded)
			})
		},
	}
}

func metadataCommand() *cli.Command {
	return relayEventCommand("metadata", group.KindGroupMetadata, "Publish group metadata",
		func(builder *groupevent.Builder, groupID ref.GroupID, loaded *manifest.Manifest) (nostr.Event, error) {
			return builder.Metadata(groupID, loaded.Metadata)
		})
}

func adminsCommand() *cli.Command {
	return relayEventCommand("admins", group.KindGroupAdmins, "Publish the admin list",
		func(builder *groupevent.Builder, groupID ref.GroupID, loaded *manifest.Manifest) (nostr.Event, error) {
			return builder.Admins(groupID, loaded.Admins)
		})
}

func membersCommand() *cli.Command {
	return relayEventCommand("members", group.KindGroupMembers, "Publish the member list",
		func(builder *groupevent.Builder, groupID ref.GroupID, loaded *manifest.Manifest) (nostr.Event, error) {
			return builder.Members(groupID, loaded.Members)
		})
}

func rolesCommand() *cli.Command {
	return relayEventCommand("roles", group.KindGroupRoles, "Publish the role definitions",
		func(builder *groupevent.Builder, groupID ref.GroupID, loaded *manifest.Manifest) (nostr.Event, error) {
			return builder.Roles(groupID, loaded.Roles)
		})
}
