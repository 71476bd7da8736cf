// Package iotesting provides shared test utilities: small input files
// and configurations that point to them.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/cc0photos/pkg/config"
)

// Sample inputs. Only observation 10 is a research-grade observation
// of a species with a common name that has a CC0 still image.
const (
	TaxaCSV = `id,scientificName,taxonRank
1,Apis mellifera,species
2,Apis,genus
3,Bombus terrestris,species
`
	VernacularsCSV = `id,vernacularName
1,Honey bee
1,Western honey bee
2,Honey bees
`
	ObservationsCSV = `id,datasetName,scientificName
10,iNaturalist research-grade observations,Apis mellifera
11,other,Apis mellifera
13,iNaturalist research-grade observations,Bombus terrestris
14,iNaturalist research-grade observations,Apis mellifera Linnaeus 1758
`
	MediaCSV = `id,catalogNumber,format,license,type
10,C1,image/jpeg,http://creativecommons.org/publicdomain/zero/1.0/,StillImage
12,C2,image/jpeg,other,StillImage
11,C3,image/jpeg,http://creativecommons.org/publicdomain/zero/1.0/,StillImage
14,C4,image/png,http://creativecommons.org/publicdomain/zero/1.0/,StillImage
`
	// FinalCSV is the expected result for sample inputs.
	FinalCSV = `id,catalogNumber,format,scientificName,vernacularName
10,C1,image/jpeg,Apis mellifera,Honey bee
`
)

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns content of a file as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	bs, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(bs)
}

// GetTestConfig writes sample inputs to a temporary directory and
// returns a configuration that reads them. Output goes to the "out"
// subdirectory, progress bars are off and chunks have 2 rows.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... run pipeline with cfg
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputTaxa(WriteFile(t, dir, "taxa.csv", TaxaCSV)),
		config.OptInputVernaculars(
			WriteFile(t, dir, "vernaculars.csv", VernacularsCSV),
		),
		config.OptInputObservations(
			WriteFile(t, dir, "observations.csv", ObservationsCSV),
		),
		config.OptInputMedia(WriteFile(t, dir, "media.csv", MediaCSV)),
		config.OptOutputDir(filepath.Join(dir, "out")),
		config.OptChunkSize(2),
		config.OptWithProgress(false),
	})
	return cfg
}

// SetupTempHome points HOME to a temporary directory, so config and log
// files of a test never touch real ones. Returns the directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
