// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event implements the "relaygroups event" commands. Each
// builds one group event (a moderation action, a join or leave
// request, a relay-generated metadata event, or a chat message), signs
// it with the configured secret key, and prints it as JSON ready to
// publish.
package event
