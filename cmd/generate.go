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
	"log/slog"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/iogenerate"
	"github.com/gnames/gnlang/internal/iowatch"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getGenerateCmd() *cobra.Command {
	var watch bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go source, docs tables and alphabets",
		Long: `Compile language sources into artifacts.

This command:
  1. Reads the language registry, trigram corpus and raw alphabets
  2. Builds canonical language profiles, adding a script to codes
     found under several scripts
  3. Renders Go source and formats it
  4. Updates language tables inside configured documents
  5. Writes normalized alphabets and an optional SQLite snapshot

Every artifact is rendered in memory first. If any step fails,
nothing is written. Files with unchanged content are not touched.

Examples:
  gnlang generate
  gnlang generate --dry-run
  gnlang generate -s langs.sqlite
  gnlang generate --watch`,
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGenerate(cmd, watch)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	generateCmd.Flags().StringP("sqlite", "s", "",
		"write SQLite snapshot to this path ('-' disables it)")
	generateCmd.Flags().BoolP("dry-run", "n", false,
		"run every step but write nothing")
	generateCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"regenerate when source files change")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, watch bool) error {
	cfg.Update(generateFlags(cmd))

	g := iogenerate.New(cfg, iogenerate.OptProgress(showProgress()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	printSummary(s)

	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	gn.Info("Watching sources, press <em>Ctrl-C</em> to stop")
	w := iowatch.New(iogenerate.SourcePaths(cfg), func(ctx context.Context) error {
		s, err := g.Generate(ctx)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		slog.Info("Regenerated", "summary", summaryLine(s))
		printSummary(s)
		return nil
	})
	return w.Run(ctx)
}
