package iopipeline

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/cc0photos/internal/iocsv"
)

// progress shows how many bytes of a streamed source are consumed.
type progress struct {
	enabled bool
	prefix  string
	bar     *pb.ProgressBar
}

func newProgress(enabled bool, prefix string) *progress {
	return &progress{enabled: enabled, prefix: prefix}
}

// start shows the bar as soon as the size of the source is known.
func (p *progress) start(total int64) {
	if !p.enabled || p.bar != nil {
		return
	}
	p.bar = pb.Full.Start64(total)
	p.bar.Set("prefix", p.prefix)
	p.bar.Set(pb.Bytes, true)
	p.bar.Set(pb.CleanOnFinish, true)
}

func (p *progress) update(pr iocsv.Progress) {
	if !p.enabled {
		return
	}
	p.start(pr.BytesTotal)
	p.bar.SetCurrent(pr.BytesRead)
}

func (p *progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}
