package iopipeline

import (
	"testing"

	"github.com/gnames/cc0photos/internal/iocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	p := newProgress(true, "media: ")
	p.start(1000)
	require.NotNil(t, p.bar, "bar starts before the first batch")
	assert.Equal(t, int64(1000), p.bar.Total())
	assert.Equal(t, int64(0), p.bar.Current())

	p.update(iocsv.Progress{BytesRead: 400, BytesTotal: 1000, Batch: 1})
	assert.Equal(t, int64(400), p.bar.Current())
	assert.Equal(t, int64(1000), p.bar.Total())

	p.finish()
	assert.Nil(t, p.bar)
}

func TestProgressDisabled(t *testing.T) {
	p := newProgress(false, "media: ")
	p.start(1000)
	p.update(iocsv.Progress{BytesRead: 400, BytesTotal: 1000, Batch: 1})
	assert.Nil(t, p.bar)
	p.finish()
}
