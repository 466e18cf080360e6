// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/conformance"
	"github.com/bureau-foundation/relaygroups/lib/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var output bytes.Buffer
	root := &cli.Command{Name: "relaygroups", Logger: cli.DiscardLogger(), Subcommands: []*cli.Command{Command()}}
	err := root.Execute(cli.WithOutput(context.Background(), &output), append([]string{"conformance"}, args...))
	return output.String(), err
}

func TestBuiltInVectorsPass(t *testing.T) {
	vectors, err := conformance.LoadVectors()
	if err != nil {
		t.Fatal(err)
	}
	output, err := run(t)
	if err != nil {
		t.Fatalf("conformance: %v\n%s", err, output)
	}
	summary := fmt.Sprintf("%d passed, 0 failed", len(vectors))
	if !strings.Contains(output, summary) {
		t.Errorf("output missing %q:\n%s", summary, output)
	}
	if strings.Contains(output, "FAIL") {
		t.Errorf("output reports a failure:\n%s", output)
	}
}

func TestJSON(t *testing.T) {
	output, err := run(t, "--json")
	if err != nil {
		t.Fatalf("conformance: %v", err)
	}
	var infos []resultInfo
	if err := json.Unmarshal([]byte(output), &infos); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(infos) == 0 {
		t.Fatal("no results")
	}
	for _, info := range infos {
		if !info.Passed {
			t.Errorf("vector %s failed: %s", info.Name, info.Error)
		}
		if info.Digest != "" && len(info.Digest) != 64 {
			t.Errorf("vector %s digest %q is not 64 hex characters", info.Name, info.Digest)
		}
	}
}

func TestFailingFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "vectors.jsonc", `[
  // Passes.
  {"name": "defaults", "codec": "metadata", "manifest": {},
   "tags": [["privacy", "public"], ["closed", "open"]]},
  // Wrong expected privacy.
  {"name": "wrong", "codec": "metadata", "manifest": {},
   "tags": [["privacy", "private"], ["closed", "open"]]},
]`)
	output, err := run(t, "--file", path)
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != 1 {
		t.Fatalf("error = %v, want exit code 1", err)
	}
	if !strings.Contains(output, "1 passed, 1 failed") {
		t.Errorf("output missing summary:\n%s", output)
	}
	var failLine string
	for line := range strings.SplitSeq(output, "\n") {
		if strings.HasPrefix(line, "FAIL") {
			failLine = line
		}
	}
	if !strings.Contains(failLine, "wrong") || !strings.Contains(failLine, "tag 0") {
		t.Errorf("FAIL line = %q, want the vector name and mismatch", failLine)
	}
}

func TestFileGlob(t *testing.T) {
	directory := t.TempDir()
	vector := func(name string) string {
		return fmt.Sprintf(`[{"name": %q, "codec": "members", "manifest": {}, "tags": []}]`, name)
	}
	for path, content := range map[string]string{
		"a.jsonc":        vector("top"),
		"nested/b.jsonc": vector("nested"),
		"nested/c.txt":   "not a vector file",
	} {
		full := filepath.Join(directory, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	output, err := run(t, "--json", "--file", filepath.Join(directory, "**", "*.jsonc"))
	if err != nil {
		t.Fatalf("conformance: %v\n%s", err, output)
	}
	var infos []resultInfo
	if err := json.Unmarshal([]byte(output), &infos); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	if want := []string{"top", "nested"}; !slices.Equal(names, want) {
		t.Errorf("vectors = %v, want %v", names, want)
	}
}

func TestFileErrors(t *testing.T) {
	if _, err := run(t, "--file", "/nonexistent/vectors.jsonc"); cli.CategoryOf(err) != cli.CategoryNotFound {
		t.Errorf("missing file: error = %v, want not_found", err)
	}
	path := testutil.WriteTempFile(t, "unnamed.jsonc", `[{"codec": "metadata"}]`)
	if _, err := run(t, "--file", path); cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("unnamed vector: error = %v, want validation", err)
	}
	if _, err := run(t, "extra"); cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("extra argument: error = %v, want validation", err)
	}
}
