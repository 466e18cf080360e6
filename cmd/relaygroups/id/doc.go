// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package id implements the "relaygroups id" commands: parsing a
// "<relay>'<id>" group identifier into its parts and formatting a
// relay and id back into canonical form.
package id
