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
	"strings"

	"github.com/gnames/cc0photos/internal/iofs"
	"github.com/gnames/cc0photos/internal/iologger"
	cc0photos "github.com/gnames/cc0photos/pkg"
	"github.com/gnames/cc0photos/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			cc0photos.Version, cc0photos.Build),
		Use:   "cc0photos",
		Short: "Finds CC0 photos of species that have common names",
		Long: `cc0photos joins iNaturalist taxonomy and English common names with
GBIF observations and media. The result is a CSV file of public domain
(CC0) photographs annotated with scientific and common names.

Observations and media files can be many gigabytes. They are streamed
in chunks, so memory use depends on the chunk size, not on file size.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CC0PHOTOS_*)
  3. Config file (~/.config/cc0photos/config.yaml)
  4. Built-in defaults

Environment variables:
  CC0PHOTOS_INPUT_TAXA            taxonomy CSV
  CC0PHOTOS_INPUT_VERNACULARS     common names CSV
  CC0PHOTOS_INPUT_OBSERVATIONS    GBIF observations CSV
  CC0PHOTOS_INPUT_MEDIA           GBIF multimedia CSV
  CC0PHOTOS_OUTPUT_DIR            directory for results
  CC0PHOTOS_CHUNK_SIZE            rows per streamed chunk
  CC0PHOTOS_LOG_LEVEL             debug/info/warn/error`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for cc0photos")

	rootCmd.AddCommand(getRunCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
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

	// Logging with defaults until the config is loaded.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging applies log settings from the loaded configuration.
// The log file started by bootstrap is appended to.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are listed explicitly. They match fields
	// of config.ToOptions().
	v.SetEnvPrefix("CC0PHOTOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input files
	v.BindEnv("input.taxa", "CC0PHOTOS_INPUT_TAXA")
	v.BindEnv("input.vernaculars", "CC0PHOTOS_INPUT_VERNACULARS")
	v.BindEnv("input.observations", "CC0PHOTOS_INPUT_OBSERVATIONS")
	v.BindEnv("input.media", "CC0PHOTOS_INPUT_MEDIA")

	// Output
	v.BindEnv("output.dir", "CC0PHOTOS_OUTPUT_DIR")

	// Filters
	v.BindEnv("filter.dataset_name", "CC0PHOTOS_FILTER_DATASET_NAME")
	v.BindEnv("filter.license", "CC0PHOTOS_FILTER_LICENSE")
	v.BindEnv("filter.media_type", "CC0PHOTOS_FILTER_MEDIA_TYPE")
	v.BindEnv("filter.taxon_rank", "CC0PHOTOS_FILTER_TAXON_RANK")
	v.BindEnv("filter.match_canonical", "CC0PHOTOS_FILTER_MATCH_CANONICAL")

	// Log configuration
	v.BindEnv("log.level", "CC0PHOTOS_LOG_LEVEL")
	v.BindEnv("log.format", "CC0PHOTOS_LOG_FORMAT")
	v.BindEnv("log.destination", "CC0PHOTOS_LOG_DESTINATION")

	// General configuration
	v.BindEnv("chunk_size", "CC0PHOTOS_CHUNK_SIZE")

	v.AutomaticEnv()
}
