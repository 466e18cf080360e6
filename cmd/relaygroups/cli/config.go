// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"strings"

	"github.com/bureau-foundation/relaygroups/lib/config"
	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// ConfigParams is an embeddable struct adding the --config flag.
type ConfigParams struct {
	ConfigPath string `json:"-" flag:"config" desc:"path to relaygroups.yaml (default: $RELAYGROUPS_CONFIG)"`
}

// LoadConfig loads the file named by --config, or by
// RELAYGROUPS_CONFIG when the flag is absent. With neither set, the
// defaults are returned: commands that do not need a relay or key work
// without any configuration.
func (p *ConfigParams) LoadConfig() (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvironmentVariable)
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, Classify(err)
	}
	return cfg, nil
}

// ResolveGroup parses a group argument. A full "<relay>'<id>"
// identifier is parsed as-is; a bare id is placed on the configured
// default relay.
func ResolveGroup(raw string, cfg *config.Config) (ref.GroupID, error) {
	if strings.Contains(raw, "'") {
		groupID, err := ref.ParseGroupID(raw)
		if err != nil {
			return ref.GroupID{}, Classify(err)
		}
		return groupID, nil
	}
	relay, err := cfg.Relay()
	if err != nil {
		return ref.GroupID{}, Validation("group %q has no relay: %w", raw, err)
	}
	groupID, err := ref.NewGroupID(relay, raw)
	if err != nil {
		return ref.GroupID{}, Classify(err)
	}
	return groupID, nil
}
