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
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/ioconfig"
	"github.com/gnames/gnlang/internal/iofs"
	"github.com/gnames/gnlang/internal/iologger"
	app "github.com/gnames/gnlang/pkg"
	"github.com/gnames/gnlang/pkg/config"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	var configFile, rootDir string

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnlang",
		Short:   "Compiles language data for trigram-based language detection",
		Long: `gnlang merges a language registry (CSV), a trigram corpus (JSON)
and raw alphabets (YAML) into one canonical list of language profiles.

From these profiles it generates:
  - Go source with the language enumeration and trigram tables
  - markdown tables inside documents such as README.md
  - normalized alphabets YAML
  - optional SQLite snapshot

Configuration precedence (highest to lowest):
  1. CLI flags (--sqlite, --dry-run, etc.)
  2. Environment variables (GNLANG_*)
  3. Config file (--config or ./gnlang.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (output.source -> GNLANG_OUTPUT_SOURCE).

  Examples:
    GNLANG_SOURCES_REGISTRY         Language registry CSV
    GNLANG_SOURCES_CORPUS           Trigram corpus JSON
    GNLANG_OUTPUT_SOURCE            Generated Go file
    GNLANG_IDENTIFIERS_POLICY       on-collision or always
    GNLANG_LOG_LEVEL                Log level (debug/info/warn/error)

  See 'go doc github.com/gnames/gnlang/pkg/config' for complete list.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(configFile, rootDir)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnlang version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnlang")

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file (default: gnlang.yaml in the root directory)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".",
		"directory relative paths are resolved against")

	rootCmd.AddCommand(
		getGenerateCmd(),
		getCheckCmd(),
		getAlphabetsCmd(),
		getListCmd(),
	)

	return rootCmd
}

func bootstrap(configFile, rootDir string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res, err := ioconfig.Load(configFile, rootDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = res.Config.ToOptions()
	cfg.Update(opts)

	// Set runtime fields after config is loaded
	cfg.Update([]config.Option{
		config.OptHomeDir(homeDir),
		config.OptRootDir(rootDir),
	})

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"source", res.Source,
		"config_file", res.SourcePath,
		"root_dir", cfg.RootDir,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
