// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func testContext(output *bytes.Buffer) context.Context {
	return WithOutput(context.Background(), output)
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name:   "relaygroups",
		Logger: DiscardLogger(),
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "tags",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					called = "tags"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"tags"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "tags" {
		t.Errorf("dispatched to %q, want %q", called, "tags")
	}
}

func TestCommand_Execute_NestedSubcommandsWithFlags(t *testing.T) {
	type params struct {
		Relay string `flag:"relay,r" desc:"relay URL"`
		Count int    `flag:"count" default:"3"`
	}
	var parsed params
	var receivedArgs []string
	var receivedLogger *slog.Logger

	root := &Command{
		Name:   "relaygroups",
		Logger: DiscardLogger(),
		Subcommands: []*Command{
			{
				Name: "id",
				Subcommands: []*Command{
					{
						Name:   "format",
						Params: func() any { return &parsed },
						Run: func(_ context.Context, args []string, logger *slog.Logger) error {
							receivedArgs = args
							receivedLogger = logger
							return nil
						},
					},
				},
			},
		},
	}

	err := root.Execute(context.Background(), []string{"id", "format", "-r", "wss://relay.example.com", "pizza"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if parsed.Relay != "wss://relay.example.com" {
		t.Errorf("Relay = %q", parsed.Relay)
	}
	if parsed.Count != 3 {
		t.Errorf("Count = %d, want default 3", parsed.Count)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "pizza" {
		t.Errorf("args = %v, want [pizza]", receivedArgs)
	}
	if receivedLogger == nil {
		t.Error("Run received a nil logger")
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name:   "relaygroups",
		Logger: DiscardLogger(),
		Subcommands: []*Command{
			{Name: "conformance", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "tags", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"tgas"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "tags"`) {
		t.Errorf("error %q does not suggest tags", err)
	}
	if CategoryOf(err) != CategoryValidation {
		t.Errorf("category = %q, want validation", CategoryOf(err))
	}

	err = root.Execute(context.Background(), []string{"zzzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error %v, want no suggestion for a distant name", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	type params struct {
		Digest bool   `flag:"digest"`
		Output string `flag:"output,o" default:"json"`
	}
	var parsed params
	command := &Command{
		Name:   "tags",
		Logger: DiscardLogger(),
		Params: func() any { return &parsed },
		Run:    func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--digset"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --digest?") {
		t.Errorf("error %q does not suggest --digest", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "relaygroups",
		Subcommands: []*Command{{Name: "id"}},
	}
	err := root.Execute(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %v, want subcommand required", err)
	}
}

func TestCommand_Help(t *testing.T) {
	type params struct {
		Output string `flag:"output,o" desc:"output format" default:"json"`
	}
	var parsed params
	var output bytes.Buffer

	command := &Command{
		Name:        "tags",
		Description: "Emit tag lists.",
		Params:      func() any { return &parsed },
		Examples:    []Example{{Description: "Metadata tags", Command: "relaygroups tags metadata group.yaml"}},
		Run: func(context.Context, []string, *slog.Logger) error {
			t.Error("Run called for --help")
			return nil
		},
	}

	for _, args := range [][]string{{"--help"}, {"-h"}, {"file.yaml", "--help"}} {
		output.Reset()
		if err := command.Execute(testContext(&output), args); err != nil {
			t.Fatalf("Execute(%v) error: %v", args, err)
		}
		help := output.String()
		for _, want := range []string{"Emit tag lists.", "--output", "output format", "relaygroups tags metadata group.yaml"} {
			if !strings.Contains(help, want) {
				t.Errorf("help for %v missing %q:\n%s", args, want, help)
			}
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "relaygroups"}
	id := &Command{Name: "id", parent: root}
	parse := &Command{Name: "parse", parent: id}
	if got := parse.fullName(); got != "relaygroups id parse" {
		t.Errorf("fullName() = %q", got)
	}
}
