// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads group manifests: files describing one group's
// identifier, metadata, roles, admins, and members.
//
// Manifests are authored as YAML, or as JSONC (JSON with comments and
// trailing commas) when the file extension is .jsonc or .json:
//
//	group: "wss://relay.example.com'pizza-lovers"
//	metadata:
//	  name: Pizza Lovers
//	  about: We like pizza
//	  picture: https://example.com/pizza.png
//	  privacy: private
//	  closed: closed
//	roles:
//	  - name: admin
//	    description: Can do everything
//	admins:
//	  - pubkey: 79be667e...
//	    roles: [admin]
//	members:
//	  - 79be667e...
//
// Parsing happens in two stages. Decode produces a Document holding
// the raw strings; Resolve validates every value into its typed form
// (ref.GroupID, group.Privacy, ...) and fails with the grouperr
// taxonomy on the first invalid one, naming where it was found.
package manifest
