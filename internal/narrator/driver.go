package narrator

import (
	"context"
	"fmt"

	"talkdoc/internal/chunker"
	"talkdoc/internal/contextutil"
	"talkdoc/internal/storage"
	"talkdoc/internal/tts"
)

// ChunkResult is the outcome of synthesizing one chunk.
type ChunkResult struct {
	Index int    // 1-based chunk index
	Path  string // Segment file path, empty on failure
	Bytes int    // Audio size in bytes
	Err   error  // Non-nil if the chunk failed
}

// OK reports whether the chunk produced an audio segment.
func (r ChunkResult) OK() bool { return r.Err == nil }

// Report collects per-chunk results of a synthesis run, in chunk order.
type Report struct {
	Results []ChunkResult
}

// Total returns the number of chunks attempted.
func (r Report) Total() int { return len(r.Results) }

// Succeeded returns the number of chunks with a saved segment.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of chunks without a segment.
func (r Report) Failed() int { return r.Total() - r.Succeeded() }

// TotalBytes returns the combined size of all saved segments.
func (r Report) TotalBytes() int {
	n := 0
	for _, res := range r.Results {
		n += res.Bytes
	}
	return n
}

// Driver synthesizes chunks one at a time and saves each segment to the output directory.
type Driver struct {
	synth tts.Synthesizer
	dir   *storage.OutputDir
}

// NewDriver creates a Driver writing into dir.
func NewDriver(synth tts.Synthesizer, dir *storage.OutputDir) *Driver {
	return &Driver{synth: synth, dir: dir}
}

// SynthesizeAll processes chunks strictly in order. A failed chunk is logged and
// recorded, leaves no file behind, and does not stop the run. Nothing is retried.
// If ctx is cancelled, the remaining chunks are recorded as failed with ctx.Err().
func (d *Driver) SynthesizeAll(ctx context.Context, chunks []chunker.Chunk) Report {
	logger := contextutil.LoggerFromContext(ctx)
	report := Report{Results: make([]ChunkResult, 0, len(chunks))}

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, ChunkResult{Index: chunk.Index, Err: err})
			continue
		}

		logger.InfoContext(ctx, "processing chunk", "chunk", chunk.Index, "total", len(chunks), "chars", len(chunk.Text))
		res := d.synthesizeOne(ctx, chunk)
		if res.Err != nil {
			logger.ErrorContext(ctx, "error processing chunk", "chunk", chunk.Index, "error", res.Err)
		} else {
			logger.InfoContext(ctx, "saved chunk", "chunk", chunk.Index, "path", res.Path, "bytes", res.Bytes)
		}
		report.Results = append(report.Results, res)
	}

	return report
}

func (d *Driver) synthesizeOne(ctx context.Context, chunk chunker.Chunk) ChunkResult {
	audio, err := d.synth.Synthesize(ctx, chunk.Text)
	if err != nil {
		return ChunkResult{Index: chunk.Index, Err: fmt.Errorf("%w: %w", ErrExternalService, err)}
	}

	path, err := d.dir.WriteSegment(chunk.Index, audio)
	if err != nil {
		return ChunkResult{Index: chunk.Index, Err: err}
	}

	return ChunkResult{Index: chunk.Index, Path: path, Bytes: len(audio)}
}
