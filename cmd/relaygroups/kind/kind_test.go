// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kind

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var output bytes.Buffer
	root := &cli.Command{Name: "relaygroups", Logger: cli.DiscardLogger(), Subcommands: []*cli.Command{Command()}}
	err := root.Execute(cli.WithOutput(context.Background(), &output), append([]string{"kind"}, args...))
	return output.String(), err
}

func TestClassifyTable(t *testing.T) {
	output, err := run(t, "classify", "9000", "1")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	want := "KIND   NAME       CATEGORY     SCOPE\n" +
		"9000   put-user   moderation   h\n" +
		"1      kind-1     none         -\n"
	if output != want {
		t.Errorf("output:\n%s\nwant:\n%s", output, want)
	}
}

func TestClassifyJSON(t *testing.T) {
	output, err := run(t, "classify", "--json", "39002", "join-request", "9003")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	var infos []kindInfo
	if err := json.Unmarshal([]byte(output), &infos); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	want := []kindInfo{
		{Kind: 39002, Name: "group-members", Category: "metadata", GroupEvent: true, Addressable: true, ScopeTag: "d"},
		{Kind: 9021, Name: "join-request", Category: "user", GroupEvent: true, ScopeTag: "h"},
		// 9003 is a reserved gap in the moderation table.
		{Kind: 9003, Name: "kind-9003", Category: "none"},
	}
	if len(infos) != len(want) {
		t.Fatalf("got %d results, want %d", len(infos), len(want))
	}
	for i := range want {
		if infos[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, infos[i], want[i])
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	for _, args := range [][]string{
		{"classify"},
		{"classify", "banana"},
		{"classify", "70000"},
		{"classify", "-5"},
	} {
		_, err := run(t, args...)
		if cli.CategoryOf(err) != cli.CategoryValidation {
			t.Errorf("%v: error = %v, want validation", args, err)
		}
	}
}

func TestList(t *testing.T) {
	output, err := run(t, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var infos []kindInfo
	if err := json.Unmarshal([]byte(output), &infos); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(infos) != 13 {
		t.Fatalf("got %d kinds, want 13", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Kind >= infos[i].Kind {
			t.Errorf("kinds not ascending at %d: %d then %d", i, infos[i-1].Kind, infos[i].Kind)
		}
	}
	for _, info := range infos {
		if !info.GroupEvent {
			t.Errorf("catalog kind %d is not a group event", info.Kind)
		}
	}
}

func TestListCategory(t *testing.T) {
	output, err := run(t, "list", "--category", "user")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "KIND   NAME            CATEGORY   SCOPE\n" +
		"9021   join-request    user       h\n" +
		"9022   leave-request   user       h\n"
	if output != want {
		t.Errorf("output:\n%s\nwant:\n%s", output, want)
	}

	if _, err := run(t, "list", "--category", "chat"); cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("bad category: error = %v, want validation", err)
	}
}
