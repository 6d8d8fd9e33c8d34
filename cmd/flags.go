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
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/gnlang"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// generateFlags converts explicitly set flags of generate-like commands
// to config options.
func generateFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("sqlite") {
		s, _ := flags.GetString("sqlite")
		res = append(res, config.OptOutputSQLite(s))
	}
	if flags.Changed("dry-run") {
		b, _ := flags.GetBool("dry-run")
		res = append(res, config.OptDryRun(b))
	}
	return res
}

// showProgress is true when progress bars can be drawn.
func showProgress() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func printSummary(s *gnlang.Summary) {
	gn.Info(
		"Profiles: <em>%s</em>, codes: <em>%s</em>, scripts: <em>%s</em>",
		humanize.Comma(int64(s.Profiles)),
		humanize.Comma(int64(s.Codes)),
		humanize.Comma(int64(s.Scripts)),
	)
	if len(s.Collisions) > 0 {
		gn.Info("Codes with several scripts: <em>%s</em>",
			strings.Join(s.Collisions, ", "))
	}
	for _, v := range s.Skipped {
		gn.Warn("Skipped <em>%s</em>: %s", v.Key.String(), v.Reason.String())
	}

	verb := "Written"
	if s.DryRun {
		verb = "Would write"
	}
	for _, path := range s.Written {
		gn.Info("%s <em>%s</em>", verb, path)
	}
	if len(s.Unchanged) > 0 {
		gn.Info("Unchanged: %s", humanize.Comma(int64(len(s.Unchanged))))
	}
	gn.Info("Done in %s", gnfmt.TimeString(s.Duration.Seconds()))
}

func summaryLine(s *gnlang.Summary) string {
	return fmt.Sprintf("%d profiles, %d written, %d unchanged",
		s.Profiles, len(s.Written), len(s.Unchanged))
}
