package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/cc0photos/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "cc0photos"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "cc0photos", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "cc0photos", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptOutputDir("/tmp/res")})

	assert.Equal(t, "/tmp/res/common_name_observations.csv",
		cfg.ObservationsPath())
	assert.Equal(t, "/tmp/res/cc0_photos.csv", cfg.MediaPath())
	assert.Equal(t, "/tmp/res/cc0_photos_with_common_name.csv",
		cfg.FinalPath())
	assert.Equal(t, "/tmp/res/.cc0photos.lock", cfg.LockPath())
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "data/inaturalist-taxonomy.dwca/taxa.csv",
			cfg.Input.Taxa)
		assert.Equal(t,
			"data/inaturalist-taxonomy.dwca/VernacularNames-english.csv",
			cfg.Input.Vernaculars)
		assert.Equal(t, "data/gbif-observations-dwca/observations.csv",
			cfg.Input.Observations)
		assert.Equal(t, "data/gbif-observations-dwca/media.csv",
			cfg.Input.Media)
		assert.Equal(t, "out", cfg.Output.Dir)

		assert.Equal(t, "iNaturalist research-grade observations",
			cfg.Filter.DatasetName)
		assert.Equal(t, "http://creativecommons.org/publicdomain/zero/1.0/",
			cfg.Filter.License)
		assert.Equal(t, "StillImage", cfg.Filter.MediaType)
		assert.Equal(t, "species", cfg.Filter.TaxonRank)
		assert.False(t, cfg.Filter.MatchCanonical)

		assert.Equal(t, 100_000, cfg.ChunkSize)
		assert.True(t, cfg.WithProgress)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestOptionInputPaths(t *testing.T) {
	tests := []struct {
		name string
		opt  func(string) config.Option
		get  func(*config.Config) string
	}{
		{
			name: "taxa",
			opt:  config.OptInputTaxa,
			get:  func(c *config.Config) string { return c.Input.Taxa },
		},
		{
			name: "vernaculars",
			opt:  config.OptInputVernaculars,
			get:  func(c *config.Config) string { return c.Input.Vernaculars },
		},
		{
			name: "observations",
			opt:  config.OptInputObservations,
			get:  func(c *config.Config) string { return c.Input.Observations },
		},
		{
			name: "media",
			opt:  config.OptInputMedia,
			get:  func(c *config.Config) string { return c.Input.Media },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			def := tt.get(cfg)

			cfg.Update([]config.Option{tt.opt("  /data/file.csv  ")})
			assert.Equal(t, "/data/file.csv", tt.get(cfg),
				"path should be trimmed")

			cfg = config.New()
			cfg.Update([]config.Option{tt.opt("   ")})
			assert.Equal(t, def, tt.get(cfg),
				"empty path should keep default")
		})
	}
}

func TestOptionChunkSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid chunk size",
			input:    500,
			expected: 500,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 100_000, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -10,
			expected: 100_000, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptChunkSize(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.ChunkSize)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "verbose",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"stdout", "stdout", "stdout"},
		{"stderr", " STDERR ", "stderr"},
		{"invalid", "syslog", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogDestination(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestOptionFilters(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptFilterDatasetName("iNaturalist casual observations"),
		config.OptFilterLicense("http://creativecommons.org/licenses/by/4.0/"),
		config.OptFilterMediaType("Sound"),
		config.OptFilterTaxonRank("subspecies"),
		config.OptFilterMatchCanonical(true),
		config.OptFilterLicense(""),
	})

	assert.Equal(t, "iNaturalist casual observations", cfg.Filter.DatasetName)
	assert.Equal(t, "http://creativecommons.org/licenses/by/4.0/",
		cfg.Filter.License, "empty license should be ignored")
	assert.Equal(t, "Sound", cfg.Filter.MediaType)
	assert.Equal(t, "subspecies", cfg.Filter.TaxonRank)
	assert.True(t, cfg.Filter.MatchCanonical)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptInputMedia("/big/media.csv"),
		config.OptOutputDir("/big/out"),
		config.OptChunkSize(1234),
		config.OptFilterMatchCanonical(true),
		config.OptLogFormat("text"),
		config.OptWithProgress(false),
		config.OptHomeDir("/home/user"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Input, dst.Input)
	assert.Equal(t, src.Output, dst.Output)
	assert.Equal(t, src.Filter, dst.Filter)
	assert.Equal(t, src.Log, dst.Log)
	assert.Equal(t, 1234, dst.ChunkSize)

	// runtime-only fields are not carried over
	assert.True(t, dst.WithProgress)
	assert.Empty(t, dst.HomeDir)
}
