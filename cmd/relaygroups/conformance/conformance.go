// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bureau-foundation/relaygroups/cmd/relaygroups/cli"
	"github.com/bureau-foundation/relaygroups/lib/conformance"
	"github.com/bureau-foundation/relaygroups/lib/tui"
)

type conformanceParams struct {
	cli.JSONOutput
	File string `json:"file" flag:"file,f" desc:"JSONC vector file, or a ** glob of files, to run instead of the built-in vectors"`
}

// resultInfo is the JSON shape of one vector result.
type resultInfo struct {
	Name   string `json:"name"`
	Codec  string `json:"codec"`
	Passed bool   `json:"passed"`
	Digest string `json:"digest,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Command returns the "conformance" command.
func Command() *cli.Command {
	var params conformanceParams
	return &cli.Command{
		Name:    "conformance",
		Summary: "Run the tag codec conformance vectors",
		Usage:   "relaygroups conformance [--file PATTERN] [--json]",
		Description: `Run each conformance vector through the manifest resolver and the
tag codecs, and compare the produced tag lists, canonical identifiers
and error kinds with the expected values. Passing tag-list vectors
report the digest of their CBOR encoding.

--file replaces the built-in vectors with those in the matching files.
The pattern may use ** to match any number of directories; files are
run in lexical path order.

Exits with status 1 when any vector fails.`,
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return cli.Validation("unexpected arguments: %v", args)
			}

			vectors, err := loadVectors(params.File)
			if err != nil {
				return err
			}
			results := conformance.RunAll(vectors)

			infos := make([]resultInfo, len(results))
			failed := 0
			for i, result := range results {
				infos[i] = resultInfo{
					Name:   result.Vector.Name,
					Codec:  result.Vector.Codec,
					Passed: result.Passed(),
				}
				if !result.Digest.IsZero() {
					infos[i].Digest = result.Digest.String()
				}
				if result.Err != nil {
					infos[i].Error = result.Err.Error()
					failed++
					logger.Debug("conformance vector failed", "vector", result.Vector.Name, "error", result.Err)
				}
			}
			logger.Debug("conformance run complete", "vectors", len(results), "failed", failed)

			if done, err := params.EmitJSON(ctx, infos); done {
				if err != nil {
					return err
				}
			} else {
				out := cli.Output(ctx)
				styles := tui.NewStyles(tui.DefaultTheme, cli.IsTerminal(out))
				fmt.Fprint(out, renderResults(styles, infos))
				fmt.Fprintf(out, "\n%d passed, %d failed\n", len(infos)-failed, failed)
			}

			if failed > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func loadVectors(pattern string) ([]conformance.Vector, error) {
	if pattern == "" {
		vectors, err := conformance.LoadVectors()
		if err != nil {
			return nil, cli.Internal("%w", err)
		}
		return vectors, nil
	}

	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, cli.Validation("--file %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, cli.NotFound("no vector files match %q", pattern)
	}
	slices.Sort(paths)

	var vectors []conformance.Vector
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, cli.ClassifyInput(err)
		}
		parsed, err := conformance.ParseVectors(data)
		if err != nil {
			return nil, cli.Validation("%s: %w", path, err)
		}
		vectors = append(vectors, parsed...)
	}
	return vectors, nil
}

func renderResults(styles tui.Styles, infos []resultInfo) string {
	rows := make([][]tui.Cell, 0, len(infos))
	for _, info := range infos {
		status := tui.Cell{Text: "PASS", Color: styles.Theme.Pass}
		detail := tui.Cell{Text: shortDigest(info.Digest), Color: styles.Theme.FaintText}
		if !info.Passed {
			status = tui.Cell{Text: "FAIL", Color: styles.Theme.Fail}
			detail = tui.Cell{Text: info.Error}
		}
		rows = append(rows, []tui.Cell{status, {Text: info.Name}, {Text: info.Codec}, detail})
	}
	return styles.Table([]string{"STATUS", "VECTOR", "CODEC", "DETAIL"}, rows)
}

// shortDigest abbreviates a digest for the table; --json carries the
// full value.
func shortDigest(digest string) string {
	if len(digest) > 16 {
		return digest[:16]
	}
	return digest
}
