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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/iogenerate"
	"github.com/gnames/gnlang/pkg/langmodel"
	"github.com/gnames/gnlang/pkg/render"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print canonical language profiles",
		Long: `Build language profiles from sources and print them as a
markdown table, followed by the number of profiles per script.
Nothing is written.

Examples:
  gnlang list
  gnlang list > languages.md`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runList(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return listCmd
}

func runList(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	m, err := iogenerate.New(cfg).Model(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, profilesTable(m.Profiles))
	fmt.Fprintln(out)
	fmt.Fprint(out, scriptsTable(m.Profiles))
	return nil
}

func profilesTable(profiles []langmodel.Profile) string {
	t := render.NewTable("ID", "Code", "Script", "English name", "Speakers")
	for _, p := range profiles {
		speakers := ""
		if p.NativeSpeakers != nil {
			speakers = humanize.Ftoa(*p.NativeSpeakers)
		}
		t.Add(p.ID, p.Code, p.Script, p.EngName, speakers)
	}
	return t.String()
}

func scriptsTable(profiles []langmodel.Profile) string {
	t := render.NewTable("Script", "Profiles")
	var total int
	for _, g := range langmodel.Groups(profiles, 0) {
		total += len(g.Profiles)
		t.Add(g.Script, humanize.Comma(int64(len(g.Profiles))))
	}
	t.Add("Total", humanize.Comma(int64(total)))
	return t.String()
}
