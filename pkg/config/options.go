package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputTaxa sets the path to the taxonomy table.
func OptInputTaxa(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Taxa", s) {
			c.Input.Taxa = s
		}
	}
}

// OptInputVernaculars sets the path to the vernacular names table.
func OptInputVernaculars(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Vernaculars", s) {
			c.Input.Vernaculars = s
		}
	}
}

// OptInputObservations sets the path to the observations table.
func OptInputObservations(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Observations", s) {
			c.Input.Observations = s
		}
	}
}

// OptInputMedia sets the path to the multimedia table.
func OptInputMedia(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Media", s) {
			c.Input.Media = s
		}
	}
}

// OptOutputDir sets the directory for generated files.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Output.Dir = s
		}
	}
}

// OptFilterDatasetName sets the datasetName observations must have.
func OptFilterDatasetName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Filter Dataset Name", s) {
			c.Filter.DatasetName = s
		}
	}
}

// OptFilterLicense sets the license URI media records must have.
func OptFilterLicense(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Filter License", s) {
			c.Filter.License = s
		}
	}
}

// OptFilterMediaType sets the type media records must have.
func OptFilterMediaType(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Filter Media Type", s) {
			c.Filter.MediaType = s
		}
	}
}

// OptFilterTaxonRank sets the rank of taxa that receive common names.
func OptFilterTaxonRank(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Filter Taxon Rank", s) {
			c.Filter.TaxonRank = s
		}
	}
}

// OptFilterMatchCanonical toggles joining observations to the
// reference table by canonical forms of scientific names.
func OptFilterMatchCanonical(b bool) Option {
	return func(c *Config) {
		c.Filter.MatchCanonical = b
	}
}

// OptChunkSize sets the number of rows decoded per batch.
func OptChunkSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Chunk Size", i) {
			c.ChunkSize = i
		}
	}
}

// OptWithProgress toggles progress bars.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
