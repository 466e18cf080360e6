// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/clock"
	"github.com/bureau-foundation/relaygroups/lib/config"
	"github.com/bureau-foundation/relaygroups/lib/groupevent"
	"github.com/bureau-foundation/relaygroups/lib/manifest"
	"github.com/bureau-foundation/relaygroups/lib/ref"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

// Command returns the "event" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "event",
		Summary: "Build and sign group events",
		Description: `Build a group event, sign it, and print it as JSON.

The group argument is either a full relay-url'group-id identifier or a
bare group id, which is placed on the config file's default_relay.
Events are signed with the key in --secret-key-file, falling back to
secret_key_file from the config. --unsigned prints the event without
id, pubkey or sig for signing elsewhere.`,
		Subcommands: []*cli.Command{
			createCommand(),
			editCommand(),
			putUserCommand(),
			removeUserCommand(),
			deleteEventCommand(),
			deleteGroupCommand(),
			inviteCommand(),
			joinCommand(),
			leaveCommand(),
			messageCommand(),
			metadataCommand(),
			adminsCommand(),
			membersCommand(),
			rolesCommand(),
		},
	}
}

// SigningParams are the flags shared by every event command.
type SigningParams struct {
	cli.ConfigParams
	SecretKeyFile string `json:"-" flag:"secret-key-file,k" desc:"file holding the 64-character hex secret key (default: secret_key_file from config)"`
	Unsigned      bool   `json:"unsigned" flag:"unsigned" desc:"print the event unsigned"`
	CreatedAt     uint64 `json:"created_at" flag:"created-at" desc:"unix timestamp for created_at (default: now)"`
}

// timeSource returns the clock events are stamped with. A --created-at
// beyond the int64 range is rejected.
func (p *SigningParams) timeSource() (clock.Clock, error) {
	if p.CreatedAt == 0 {
		return clock.Real(), nil
	}
	if p.CreatedAt > math.MaxInt64 {
		return nil, cli.Validation("--created-at %d is out of range (maximum %d)", p.CreatedAt, int64(math.MaxInt64))
	}
	return clock.Fixed(time.Unix(int64(p.CreatedAt), 0)), nil
}

// secretKey reads the signing key named by --secret-key-file or the
// config.
func (p *SigningParams) secretKey(cfg *config.Config) (string, error) {
	path := p.SecretKeyFile
	if path == "" {
		path = cfg.SecretKeyFile
	}
	if path == "" {
		return "", cli.Validation("no secret key: pass --secret-key-file, set secret_key_file in the config, or use --unsigned")
	}
	secretKey, err := config.ReadSecretKeyFile(path)
	if err != nil {
		return "", cli.ClassifyInput(err)
	}
	return secretKey, nil
}

// buildFunc builds an event from the command's positional arguments.
type buildFunc func(builder *groupevent.Builder, cfg *config.Config) (nostr.Event, error)

// emit loads the config, builds the event, signs it unless --unsigned,
// and writes it to the command output as JSON.
func emit(ctx context.Context, params *SigningParams, logger *slog.Logger, build buildFunc) error {
	cfg, err := params.LoadConfig()
	if err != nil {
		return err
	}

	timeSource, err := params.timeSource()
	if err != nil {
		return err
	}

	event, err := build(groupevent.NewBuilder(timeSource), cfg)
	if err != nil {
		return cli.Classify(err)
	}

	if !params.Unsigned {
		secretKey, err := params.secretKey(cfg)
		if err != nil {
			return err
		}
		if err := groupevent.Sign(&event, secretKey); err != nil {
			return cli.Internal("%w", err)
		}
	}

	kind, _ := group.KindFromInt(event.Kind)
	logger.Debug("built group event",
		"kind", kind.String(),
		"tag_count", len(event.Tags),
		"signed", !params.Unsigned,
	)
	return cli.WriteJSON(cli.Output(ctx), event)
}

// groupArgument resolves the leading group argument and returns the
// remaining arguments.
func groupArgument(args []string, cfg *config.Config) (ref.GroupID, []string, error) {
	if len(args) == 0 {
		return ref.GroupID{}, nil, cli.Validation("expected a group: relay-url'group-id, or a bare id with default_relay configured")
	}
	groupID, err := cli.ResolveGroup(args[0], cfg)
	if err != nil {
		return ref.GroupID{}, nil, err
	}
	return groupID, args[1:], nil
}

// expectArgs checks the number of arguments left after the group.
func expectArgs(args []string, want int, what string) error {
	if len(args) != want {
		if want == 0 {
			return cli.Validation("unexpected arguments after the group: %q", args)
		}
		return cli.Validation("expected %s after the group, got %d arguments", what, len(args))
	}
	return nil
}

// ManifestParams adds --manifest to commands that take group data from
// a manifest file.
type ManifestParams struct {
	SigningParams
	Manifest string `json:"manifest" flag:"manifest,m" desc:"group manifest (YAML, or JSONC for .json/.jsonc)"`
}

// load reads the manifest, or returns an empty one when --manifest is
// not set.
func (p *ManifestParams) load() (*manifest.Manifest, error) {
	if p.Manifest == "" {
		return &manifest.Manifest{}, nil
	}
	loaded, err := manifest.ReadFile(p.Manifest)
	if err != nil {
		return nil, cli.ClassifyInput(err)
	}
	return loaded, nil
}

// manifestGroup resolves the group for a manifest command: the
// positional argument when given, otherwise the manifest's group field.
func (p *ManifestParams) manifestGroup(args []string, cfg *config.Config) (*manifest.Manifest, ref.GroupID, error) {
	loaded, err := p.load()
	if err != nil {
		return nil, ref.GroupID{}, err
	}
	if len(args) == 0 && !loaded.Group.IsZero() {
		return loaded, loaded.Group, nil
	}
	groupID, rest, err := groupArgument(args, cfg)
	if err != nil {
		return nil, ref.GroupID{}, err
	}
	if err := expectArgs(rest, 0, ""); err != nil {
		return nil, ref.GroupID{}, err
	}
	return loaded, groupID, nil
}

// parsePublicKey parses a hex public key argument.
func parsePublicKey(raw string) (ref.PublicKey, error) {
	publicKey, err := ref.ParsePublicKey(raw)
	if err != nil {
		return ref.PublicKey{}, cli.Validation("%w", err)
	}
	return publicKey, nil
}

// parseEventID parses a hex event id argument.
func parseEventID(raw string) (ref.EventID, error) {
	eventID, err := ref.ParseEventID(raw)
	if err != nil {
		return ref.EventID{}, cli.Validation("%w", err)
	}
	return eventID, nil
}
