// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Event builders stamp created_at from a Clock instead of calling
// time.Now directly, so tests can pin the timestamp and compare whole
// events:
//
//	builder := groupevent.NewBuilder(clock.Real())
//
// In tests:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	builder := groupevent.NewBuilder(fake)
//	fake.Advance(time.Minute)
package clock
