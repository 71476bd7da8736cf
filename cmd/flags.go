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
	"github.com/gnames/cc0photos/pkg/config"
	"github.com/spf13/cobra"
)

// runFlags keeps values of the run command flags.
type runFlags struct {
	stages         []string
	chunkSize      int
	out            string
	taxa           string
	vernaculars    string
	observations   string
	media          string
	matchCanonical bool
	quiet          bool
}

// flagOptions converts explicitly set flags to config options.
func flagOptions(cmd *cobra.Command, flags runFlags) []config.Option {
	var res []config.Option
	changed := cmd.Flags().Changed

	strOpts := []struct {
		name string
		val  string
		fn   func(string) config.Option
	}{
		{"out", flags.out, config.OptOutputDir},
		{"taxa", flags.taxa, config.OptInputTaxa},
		{"vernaculars", flags.vernaculars, config.OptInputVernaculars},
		{"observations", flags.observations, config.OptInputObservations},
		{"media", flags.media, config.OptInputMedia},
	}
	for _, v := range strOpts {
		if changed(v.name) {
			res = append(res, v.fn(v.val))
		}
	}

	if changed("chunk-size") {
		res = append(res, config.OptChunkSize(flags.chunkSize))
	}
	if changed("match-canonical") {
		res = append(res, config.OptFilterMatchCanonical(flags.matchCanonical))
	}
	if flags.quiet {
		res = append(res, config.OptWithProgress(false))
	}
	return res
}
