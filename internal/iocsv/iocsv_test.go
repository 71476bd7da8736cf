package iocsv

import (
	"path/filepath"
	"testing"

	"github.com/gnames/cc0photos/internal/iotesting"
	"github.com/gnames/cc0photos/pkg/errcode"
	"github.com/gnames/cc0photos/pkg/refnames"
	"github.com/gnames/cc0photos/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReference(t *testing.T) *refnames.Reference {
	t.Helper()
	taxa := table.New([]string{"id", "scientificName", "taxonRank"},
		[][]string{
			{"1", "Apis mellifera", "species"},
			{"2", "Bombus terrestris", "species"},
		})
	vern := table.New([]string{"id", "vernacularName"},
		[][]string{
			{"1", "Honey bee"},
			{"2", "Buff-tailed bumblebee"},
		})
	ref, err := refnames.Build(taxa, vern)
	require.NoError(t, err)
	return ref
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	path := iotesting.WriteFile(t, dir, "taxa.csv",
		"\uFEFFid,scientificName,taxonRank\n"+
			"1,Apis mellifera,species\n"+
			"2,\"Apis\"\n")

	tbl, err := ReadAll(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "scientificName", "taxonRank"},
		tbl.Header, "byte order mark is removed")
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"1", "Apis mellifera", "species"}, tbl.Rows[0])

	rank := "not null"
	tbl.Each(func(r table.Row) {
		if r.Get("id") == "2" {
			rank = r.Get("taxonRank")
		}
	})
	assert.Equal(t, "", rank, "short rows have null cells")
}

func TestReadAllErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadAll(filepath.Join(dir, "absent.csv"))
	require.Error(t, err)
	assert.Equal(t, errcode.MissingInputError, errCode(t, err))

	_, err = ReadAll(dir)
	require.Error(t, err)
	assert.Equal(t, errcode.OpenFileError, errCode(t, err))

	path := iotesting.WriteFile(t, dir, "bad.csv", "id,name\n1,a,b\n")
	_, err = ReadAll(path)
	require.Error(t, err)
	assert.Equal(t, errcode.ReadCSVError, errCode(t, err))
}

func TestReadAllEmpty(t *testing.T) {
	dir := t.TempDir()
	path := iotesting.WriteFile(t, dir, "empty.csv", "")

	tbl, err := ReadAll(path)
	require.NoError(t, err)
	assert.Empty(t, tbl.Header)
	assert.Equal(t, 0, tbl.Len())

	err = tbl.Require("id")
	require.Error(t, err)
	assert.Equal(t, errcode.SchemaError, errCode(t, err))
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	tbl := table.New([]string{"id", "vernacularName"}, [][]string{
		{"1", "Bee, honey"},
		{"2", `"Bumble" bee`},
	})
	require.NoError(t, WriteAll(path, tbl))

	assert.Equal(t,
		"id,vernacularName\n1,\"Bee, honey\"\n2,\"\"\"Bumble\"\" bee\"\n",
		iotesting.ReadFile(t, path))

	res, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Header, res.Header)
	assert.Equal(t, tbl.Rows, res.Rows)

	// existing file is replaced
	require.NoError(t, WriteAll(path, table.New([]string{"id"}, nil)))
	assert.Equal(t, "id\n", iotesting.ReadFile(t, path))

	err = WriteAll(filepath.Join(dir, "no", "out.csv"), tbl)
	require.Error(t, err)
	assert.Equal(t, errcode.CreateFileError, errCode(t, err))
}
