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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/cc0photos/internal/iopipeline"
	cc0photos "github.com/gnames/cc0photos/pkg"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	var flags runFlags

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Create CSV file of CC0 photos with common names",
		Long: `Run the pipeline that finds CC0 photos of species with common names.

Stages:
  1. observations: builds the table of scientific names with English
     common names from taxonomy, then streams observations and keeps
     research-grade records of those names
     (common_name_observations.csv)
  2. media: streams media and keeps CC0 still images (cc0_photos.csv)
  3. merge: joins both files by id
     (cc0_photos_with_common_name.csv)

Stages always run in this order. A stage can be rerun alone if files
of the previous stages exist in the output directory.

Examples:
  # Run all stages with settings from config.yaml
  cc0photos run

  # Rerun only the merge stage
  cc0photos run --stages merge

  # Use smaller chunks to save memory
  cc0photos run -c 20000 -o /data/out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPipeline(cmd, flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	f := runCmd.Flags()
	f.StringSliceVarP(&flags.stages, "stages", "s", nil,
		"stages to run: observations, media, merge (empty = all)")
	f.IntVarP(&flags.chunkSize, "chunk-size", "c", 0,
		"number of rows processed at once")
	f.StringVarP(&flags.out, "out", "o", "",
		"directory for output files")
	f.StringVar(&flags.taxa, "taxa", "", "path to taxonomy CSV")
	f.StringVar(&flags.vernaculars, "vernaculars", "",
		"path to common names CSV")
	f.StringVar(&flags.observations, "observations", "",
		"path to observations CSV")
	f.StringVar(&flags.media, "media", "", "path to media CSV")
	f.BoolVarP(&flags.matchCanonical, "match-canonical", "m", false,
		"match scientific names by canonical forms")
	f.BoolVarP(&flags.quiet, "quiet", "q", false,
		"do not show progress bars")

	return runCmd
}

func runPipeline(cmd *cobra.Command, flags runFlags) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg.Update(flagOptions(cmd, flags))

	stages := make([]cc0photos.Stage, len(flags.stages))
	for i, v := range flags.stages {
		stages[i] = cc0photos.Stage(v)
	}

	_, err := iopipeline.New(cfg).Run(ctx, stages...)
	if err != nil {
		return err
	}

	gn.Info("Results are in <em>%s</em>", cfg.Output.Dir)
	return nil
}
