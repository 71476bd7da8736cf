// Package config provides configuration management for cc0photos.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: taxa, vernaculars, observations, media
//   - Output: dir
//   - Filter: dataset_name, license, media_type, taxon_rank, match_canonical
//   - Log: level, format, destination
//   - General: chunk_size
//
// Runtime-only fields (CLI flags only):
//   - WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CC0PHOTOS_ prefix with underscores for nesting:
//
//	CC0PHOTOS_INPUT_OBSERVATIONS=/data/observations.csv
//	CC0PHOTOS_OUTPUT_DIR=/data/out
//	CC0PHOTOS_CHUNK_SIZE=50000
//	CC0PHOTOS_LOG_LEVEL=info
package config

// Config represents the complete cc0photos configuration.
type Config struct {
	// Input contains paths to the source CSV files.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output contains the location of generated files.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Filter contains literal values used to select records.
	Filter FilterConfig `mapstructure:"filter" yaml:"filter"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// ChunkSize is the maximum number of rows decoded from a streamed file
	// at once. It is the only knob that trades memory for I/O overhead.
	// Decrease it if the process runs out of memory.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`

	// WithProgress enables progress bars for streamed stages.
	WithProgress bool `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// InputConfig contains paths to the four source tables.
type InputConfig struct {
	// Taxa is the iNaturalist taxonomy table (id, scientificName, taxonRank).
	Taxa string `mapstructure:"taxa" yaml:"taxa"`

	// Vernaculars is the table of English common names (id, vernacularName).
	Vernaculars string `mapstructure:"vernaculars" yaml:"vernaculars"`

	// Observations is the GBIF observations table
	// (id, datasetName, scientificName). It can be many gigabytes.
	Observations string `mapstructure:"observations" yaml:"observations"`

	// Media is the GBIF multimedia table
	// (id, catalogNumber, format, license, type). It can be many gigabytes.
	Media string `mapstructure:"media" yaml:"media"`
}

// OutputConfig contains the location of intermediate and final files.
type OutputConfig struct {
	// Dir is the directory for intermediate and final CSV files.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// FilterConfig contains literals records are compared with.
type FilterConfig struct {
	// DatasetName selects observations of one dataset.
	DatasetName string `mapstructure:"dataset_name" yaml:"dataset_name"`

	// License selects media records by license URI.
	License string `mapstructure:"license" yaml:"license"`

	// MediaType selects media records by Dublin Core type.
	MediaType string `mapstructure:"media_type" yaml:"media_type"`

	// TaxonRank selects taxa that receive common names.
	TaxonRank string `mapstructure:"taxon_rank" yaml:"taxon_rank"`

	// MatchCanonical makes the observations join use canonical forms
	// of scientific names instead of verbatim strings. It helps when
	// observations carry authorships that the taxonomy does not.
	MatchCanonical bool `mapstructure:"match_canonical" yaml:"match_canonical"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			Taxa:         DefaultTaxaPath,
			Vernaculars:  DefaultVernacularsPath,
			Observations: DefaultObservationsPath,
			Media:        DefaultMediaPath,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		Filter: FilterConfig{
			DatasetName: ResearchGradeDataset,
			License:     CC0License,
			MediaType:   StillImage,
			TaxonRank:   SpeciesRank,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		ChunkSize:    100_000,
		WithProgress: true,
	}

	return res
}
