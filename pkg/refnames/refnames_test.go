package refnames_test

import (
	"testing"

	"github.com/gnames/cc0photos/pkg/errcode"
	"github.com/gnames/cc0photos/pkg/refnames"
	"github.com/gnames/cc0photos/pkg/table"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taxaTable(rows ...[]string) *table.Table {
	return table.New([]string{"id", "taxonID", "scientificName", "taxonRank"},
		rows)
}

func vernTable(rows ...[]string) *table.Table {
	return table.New([]string{"id", "vernacularName", "language"}, rows)
}

func TestBuildHoneyBee(t *testing.T) {
	taxa := taxaTable([]string{"1", "t1", "Apis mellifera", "species"})
	vern := vernTable([]string{"1", "Honey bee", "en"})

	ref, err := refnames.Build(taxa, vern)
	require.NoError(t, err)

	assert.Equal(t, 1, ref.Len())
	name, ok := ref.Lookup("Apis mellifera")
	assert.True(t, ok)
	assert.Equal(t, "Honey bee", name)

	tbl := ref.Table()
	assert.Equal(t, []string{"scientificName", "vernacularName"}, tbl.Header)
	assert.Equal(t, [][]string{{"Apis mellifera", "Honey bee"}}, tbl.Rows)
}

func TestBuildFirstNameWins(t *testing.T) {
	taxa := taxaTable(
		[]string{"1", "t1", "Bombus terrestris", "species"},
		[]string{"2", "t2", "Apis mellifera", "species"},
		// the same scientific name under another id
		[]string{"3", "t3", "Bombus terrestris", "species"},
	)
	vern := vernTable(
		[]string{"2", "Western honey bee", "en"},
		[]string{"3", "Large earth bumblebee", "en"},
		[]string{"1", "Buff-tailed bumblebee", "en"},
		[]string{"2", "Honey bee", "en"},
		[]string{"1", "Zebra bumblebee", "en"},
	)

	ref, err := refnames.Build(taxa, vern)
	require.NoError(t, err)

	assert.Equal(t, 2, ref.Len(), "one entry per scientific name")
	assert.Equal(t, []string{"Bombus terrestris", "Apis mellifera"},
		ref.Names())

	name, _ := ref.Lookup("Bombus terrestris")
	assert.Equal(t, "Buff-tailed bumblebee", name,
		"first taxon row, then first vernacular row")
	name, _ = ref.Lookup("Apis mellifera")
	assert.Equal(t, "Western honey bee", name)
}

func TestBuildFilters(t *testing.T) {
	taxa := taxaTable(
		[]string{"1", "t1", "Apis", "genus"},
		[]string{"2", "t2", "Apis mellifera", "species"},
		[]string{"3", "t3", "Vespa crabro", "species"},
		[]string{"4", "t4", "", "species"},
		[]string{"5", "t5", "Apis mellifera ligustica", "subspecies"},
	)
	vern := vernTable(
		[]string{"1", "Honey bees", "en"},
		[]string{"2", "", "en"},
		[]string{"2", "Honey bee", "en"},
		[]string{"4", "Ghost", "en"},
		[]string{"5", "Italian bee", "en"},
	)

	ref, err := refnames.Build(taxa, vern)
	require.NoError(t, err)

	assert.Equal(t, []string{"Apis mellifera"}, ref.Names())
	name, _ := ref.Lookup("Apis mellifera")
	assert.Equal(t, "Honey bee", name, "empty vernacular names are skipped")

	_, ok := ref.Lookup("Apis")
	assert.False(t, ok, "genus is not a species")
	_, ok = ref.Lookup("Vespa crabro")
	assert.False(t, ok, "no vernacular name")
	_, ok = ref.Lookup("")
	assert.False(t, ok)

	ref, err = refnames.Build(taxa, vern, refnames.OptRank("subspecies"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Apis mellifera ligustica"}, ref.Names())
}

func TestBuildSchemaError(t *testing.T) {
	tests := []struct {
		msg  string
		taxa *table.Table
		vern *table.Table
	}{
		{
			msg:  "taxa without rank",
			taxa: table.New([]string{"id", "scientificName"}, nil),
			vern: vernTable(),
		},
		{
			msg:  "vernaculars without name",
			taxa: taxaTable(),
			vern: table.New([]string{"id", "language"}, nil),
		},
	}

	for _, v := range tests {
		_, err := refnames.Build(v.taxa, v.vern)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.SchemaError, gnErr.Code, v.msg)
	}
}

func TestBuildEmpty(t *testing.T) {
	ref, err := refnames.Build(taxaTable(), vernTable())
	require.NoError(t, err)
	assert.Equal(t, 0, ref.Len())
	assert.Equal(t, 0, ref.Table().Len())
}

func TestBuildCanonical(t *testing.T) {
	taxa := taxaTable([]string{"1", "t1", "Apis mellifera", "species"})
	vern := vernTable([]string{"1", "Honey bee", "en"})

	ref, err := refnames.Build(taxa, vern,
		refnames.OptNormalizer(refnames.Canonical()))
	require.NoError(t, err)

	name, ok := ref.Lookup("Apis mellifera Linnaeus, 1758")
	assert.True(t, ok)
	assert.Equal(t, "Honey bee", name)

	ref, err = refnames.Build(taxa, vern)
	require.NoError(t, err)
	_, ok = ref.Lookup("Apis mellifera Linnaeus, 1758")
	assert.False(t, ok, "verbatim matching needs exact names")
}

func TestCanonicalNormalizer(t *testing.T) {
	norm := refnames.Canonical()

	tests := []struct {
		msg, name, key string
	}{
		{"empty", "", ""},
		{"binomial", "Apis mellifera", "Apis mellifera"},
		{"authorship", "Apis mellifera Linnaeus, 1758", "Apis mellifera"},
		{"cached", "Apis mellifera Linnaeus, 1758", "Apis mellifera"},
	}

	for _, v := range tests {
		assert.Equal(t, v.key, norm.Key(v.name), v.msg)
	}
	assert.Equal(t, "Apis mellifera",
		refnames.Verbatim().Key("Apis mellifera"))
}
