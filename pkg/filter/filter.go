// Package filter contains batch transforms of the observations and media
// stages and the final merge. Transforms are pure functions of one batch,
// so a file processed in batches gives the same rows as the file processed
// at once.
package filter

import (
	"github.com/gnames/cc0photos/pkg/refnames"
	"github.com/gnames/cc0photos/pkg/table"
)

// Column names of GBIF observations and multimedia tables.
const (
	ColID             = "id"
	ColDatasetName    = "datasetName"
	ColScientificName = "scientificName"
	ColVernacularName = "vernacularName"
	ColCatalogNumber  = "catalogNumber"
	ColFormat         = "format"
	ColLicense        = "license"
	ColType           = "type"
)

var (
	// ObservationsRequired are columns the observations source must have.
	ObservationsRequired = []string{ColID, ColDatasetName, ColScientificName}

	// ObservationsOutput are columns of the filtered observations file.
	ObservationsOutput = []string{ColID, ColScientificName, ColVernacularName}

	// MediaRequired are columns the media source must have.
	MediaRequired = []string{ColID, ColCatalogNumber, ColFormat, ColLicense, ColType}

	// MediaOutput are columns of the filtered media file.
	MediaOutput = []string{ColID, ColCatalogNumber, ColFormat}

	// FinalOutput are columns of the annotated CC0 photos file.
	FinalOutput = []string{
		ColID, ColCatalogNumber, ColFormat,
		ColScientificName, ColVernacularName,
	}
)

// Observations returns a transform that keeps observations of a dataset,
// attaches vernacular names from the reference and drops observations
// without them. Output columns are ObservationsOutput.
func Observations(ref *refnames.Reference, datasetName string) table.Transform {
	return func(batch *table.Table) (*table.Table, error) {
		err := batch.Require(ObservationsRequired...)
		if err != nil {
			return nil, err
		}

		var rows [][]string
		batch.Each(func(r table.Row) {
			if r.Get(ColDatasetName) != datasetName {
				return
			}
			name := r.Get(ColScientificName)
			vern, ok := ref.Lookup(name)
			if !ok || vern == "" {
				return
			}
			rows = append(rows, []string{r.Get(ColID), name, vern})
		})

		return table.New(ObservationsOutput, rows), nil
	}
}

// Media returns a transform that keeps media records with the given
// license and type. Output columns are MediaOutput.
func Media(license, mediaType string) table.Transform {
	return func(batch *table.Table) (*table.Table, error) {
		err := batch.Require(MediaRequired...)
		if err != nil {
			return nil, err
		}

		return batch.Filter(func(r table.Row) bool {
			return r.Get(ColLicense) == license && r.Get(ColType) == mediaType
		}).Select(MediaOutput...)
	}
}

// Merge left-joins filtered observations onto filtered media by id and
// keeps rows that have both a scientific and a vernacular name.
// Output columns are FinalOutput.
func Merge(media, observations *table.Table) (*table.Table, error) {
	err := media.Require(MediaOutput...)
	if err != nil {
		return nil, err
	}
	if err = observations.Require(ObservationsOutput...); err != nil {
		return nil, err
	}

	m, err := media.Select(MediaOutput...)
	if err != nil {
		return nil, err
	}
	o, err := observations.Select(ObservationsOutput...)
	if err != nil {
		return nil, err
	}

	res, err := table.LeftJoin(m, o, ColID)
	if err != nil {
		return nil, err
	}
	return res.NotNull(ColScientificName, ColVernacularName), nil
}
