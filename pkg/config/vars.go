package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "cc0photos"
)

const (
	// ResearchGradeDataset is the datasetName of community-verified
	// iNaturalist observations in GBIF exports.
	ResearchGradeDataset = "iNaturalist research-grade observations"

	// CC0License is the license URI of public domain dedications.
	CC0License = "http://creativecommons.org/publicdomain/zero/1.0/"

	// StillImage is the Dublin Core type of photographs.
	StillImage = "StillImage"

	// SpeciesRank is the taxonRank of species.
	SpeciesRank = "species"
)

const (
	DefaultTaxaPath         = "data/inaturalist-taxonomy.dwca/taxa.csv"
	DefaultVernacularsPath  = "data/inaturalist-taxonomy.dwca/VernacularNames-english.csv"
	DefaultObservationsPath = "data/gbif-observations-dwca/observations.csv"
	DefaultMediaPath        = "data/gbif-observations-dwca/media.csv"
	DefaultOutputDir        = "out"
)

const (
	observationsFile = "common_name_observations.csv"
	mediaFile        = "cc0_photos.csv"
	finalFile        = "cc0_photos_with_common_name.csv"
	lockFile         = ".cc0photos.lock"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/cc0photos by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/cc0photos/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/cc0photos/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ObservationsPath returns the path of the filtered observations file.
func (c *Config) ObservationsPath() string {
	return filepath.Join(c.Output.Dir, observationsFile)
}

// MediaPath returns the path of the filtered media file.
func (c *Config) MediaPath() string {
	return filepath.Join(c.Output.Dir, mediaFile)
}

// FinalPath returns the path of the annotated CC0 photos file.
func (c *Config) FinalPath() string {
	return filepath.Join(c.Output.Dir, finalFile)
}

// LockPath returns the path of the lock file that guards the output
// directory against concurrent runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Output.Dir, lockFile)
}
