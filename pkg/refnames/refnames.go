// Package refnames builds the reference table that gives every species
// one English common name. This is a pure package, its input tables are
// loaded elsewhere.
package refnames

import (
	"github.com/gnames/cc0photos/pkg/config"
	"github.com/gnames/cc0photos/pkg/table"
	"github.com/gnames/gnlib"
)

// Column names of iNaturalist taxonomy and vernacular tables.
const (
	ColID             = "id"
	ColScientificName = "scientificName"
	ColTaxonRank      = "taxonRank"
	ColVernacularName = "vernacularName"
)

// Reference maps scientific names to a single vernacular name.
// It is immutable after Build.
type Reference struct {
	names []string
	vern  map[string]string
	norm  Normalizer
}

type params struct {
	rank string
	norm Normalizer
}

// Option customizes Build.
type Option func(*params)

// OptRank sets the taxon rank of taxa that go to the reference.
// Default is "species".
func OptRank(rank string) Option {
	return func(p *params) {
		if rank != "" {
			p.rank = rank
		}
	}
}

// OptNormalizer sets the function that converts scientific names into
// lookup keys. Default keeps names verbatim.
func OptNormalizer(n Normalizer) Option {
	return func(p *params) {
		if n != nil {
			p.norm = n
		}
	}
}

// Build creates a Reference out of taxonomy and vernacular tables.
//
// Taxa of the required rank are left-joined with vernacular names by id.
// Taxa without a vernacular name are dropped. When a scientific name has
// several vernacular names, the first one wins. "First" follows the order
// of taxonomy rows and then the order of vernacular rows, so the result
// depends on the row order of the input files.
func Build(taxa, vern *table.Table, opts ...Option) (*Reference, error) {
	p := params{rank: config.SpeciesRank, norm: Verbatim()}
	for _, opt := range opts {
		opt(&p)
	}

	err := taxa.Require(ColID, ColScientificName, ColTaxonRank)
	if err != nil {
		return nil, err
	}
	if err = vern.Require(ColID, ColVernacularName); err != nil {
		return nil, err
	}

	species, err := taxa.Filter(func(r table.Row) bool {
		return r.Get(ColTaxonRank) == p.rank
	}).Select(ColID, ColScientificName)
	if err != nil {
		return nil, err
	}

	names, err := vern.Select(ColID, ColVernacularName)
	if err != nil {
		return nil, err
	}

	joined, err := table.LeftJoin(species, names, ColID)
	if err != nil {
		return nil, err
	}
	joined = joined.NotNull(ColScientificName, ColVernacularName)

	res := &Reference{
		vern: make(map[string]string),
		norm: p.norm,
	}
	// columns of joined: id, scientificName, vernacularName
	for _, row := range joined.Rows {
		key := p.norm.Key(row[1])
		if key == "" {
			continue
		}
		if _, ok := res.vern[key]; ok {
			continue
		}
		res.vern[key] = gnlib.FixUtf8(row[2])
		res.names = append(res.names, key)
	}
	return res, nil
}

// Lookup returns the vernacular name of a scientific name.
func (r *Reference) Lookup(name string) (string, bool) {
	key := r.norm.Key(name)
	if key == "" {
		return "", false
	}
	res, ok := r.vern[key]
	return res, ok
}

// Len returns the number of scientific names in the reference.
func (r *Reference) Len() int {
	return len(r.names)
}

// Names returns reference keys in the order they were added.
func (r *Reference) Names() []string {
	res := make([]string, len(r.names))
	copy(res, r.names)
	return res
}

// Table converts the reference to a two-column table
// (scientificName, vernacularName).
func (r *Reference) Table() *table.Table {
	rows := make([][]string, len(r.names))
	for i, v := range r.names {
		rows[i] = []string{v, r.vern[v]}
	}
	return table.New(
		[]string{ColScientificName, ColVernacularName},
		rows,
	)
}
