/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/iogenerate"
	"github.com/spf13/cobra"
)

// getAlphabetsCmd returns the alphabets command.
func getAlphabetsCmd() *cobra.Command {
	alphabetsCmd := &cobra.Command{
		Use:   "alphabets",
		Short: "Normalize raw alphabets",
		Long: `Read raw alphabets and write the normalized alphabets file.

Characters are lowercased, deduplicated and sorted. Latin-based
alphabets are merged with the shared 'base' alphabet.

Examples:
  gnlang alphabets
  gnlang alphabets --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAlphabets(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	alphabetsCmd.Flags().BoolP("dry-run", "n", false,
		"normalize alphabets but write nothing")

	return alphabetsCmd
}

func runAlphabets(cmd *cobra.Command) error {
	cfg.Update(generateFlags(cmd))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := iogenerate.New(cfg).Alphabets(ctx)
	if err != nil {
		return err
	}

	if s.Alphabets == 0 {
		gn.Warn("No alphabets found in <em>%s</em>", cfg.Path(cfg.Sources.Alphabets))
		return nil
	}
	gn.Info("Normalized <em>%d</em> alphabets", s.Alphabets)
	verb := "Written"
	if s.DryRun {
		verb = "Would write"
	}
	for _, path := range s.Written {
		gn.Info("%s <em>%s</em>", verb, path)
	}
	if len(s.Written) == 0 {
		gn.Info("Alphabets file is up to date")
	}
	return nil
}
