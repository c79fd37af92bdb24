package narrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"talkdoc/internal/chunker"
	"talkdoc/internal/concat"
	"talkdoc/internal/contextutil"
	"talkdoc/internal/document"
	"talkdoc/internal/speech"
	"talkdoc/internal/storage"
	"talkdoc/internal/tts"
)

// Options controls a Pipeline run.
type Options struct {
	AudioRoot string // Parent of the per-document output directory
	MaxChars  int    // Chunk budget; <= 0 uses chunker.DefaultMaxChars
	DryRun    bool   // Stop after writing the speech script
	NoConcat  bool   // Skip the concatenation step
}

// Result describes what a run produced.
type Result struct {
	Document   *document.Document
	Outline    []document.Heading
	Dir        *storage.OutputDir
	ScriptPath string
	Chunks     []chunker.Chunk
	ChunkStats ChunkSizeStats
	Report     Report
	Concat     *concat.Result // Nil when concatenation was not attempted
	DryRun     bool
}

// Pipeline converts a markdown file into narrated audio:
// markdown → speech script → chunks → audio segments → optional combined file.
type Pipeline struct {
	transcoder *speech.Transcoder
	synth      tts.Synthesizer
	invoker    *concat.Invoker
	opts       Options
}

// NewPipeline creates a new narration pipeline.
// invoker may be nil, in which case concatenation is skipped.
func NewPipeline(synth tts.Synthesizer, invoker *concat.Invoker, opts Options) *Pipeline {
	if opts.AudioRoot == "" {
		opts.AudioRoot = storage.DefaultRoot
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = chunker.DefaultMaxChars
	}
	return &Pipeline{
		transcoder: speech.NewTranscoder(),
		synth:      synth,
		invoker:    invoker,
		opts:       opts,
	}
}

// Run executes the pipeline for the markdown file at inputPath.
// Only input and output directory errors are returned. Per-chunk and
// concatenation failures are reported in the Result.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	content, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, WrapError(err, "failed to read input")
	}
	logger.InfoContext(ctx, "read input", "path", inputPath, "bytes", len(content))

	doc := document.Parse(string(content), inputPath)
	if !doc.HasTitle {
		logger.WarnContext(ctx, "no H1 heading found, using default folder name", "folder", document.DefaultFolderName)
	}
	logger.InfoContext(ctx, "document", "title", doc.SpokenTitle())

	outline := document.Outline(doc.Raw)
	logger.DebugContext(ctx, "document outline", "headings", len(outline))

	dir := storage.NewOutputDir(p.opts.AudioRoot, doc.FolderName())
	if err := dir.Create(); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "audio folder", "path", dir.Path)

	script := p.transcoder.Transcode(doc.Raw)
	scriptPath, err := dir.WriteScript(script.Text)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "saved speech script", "path", scriptPath)

	chunks := chunker.Split(script.Text, p.opts.MaxChars)
	stats := ComputeChunkSizeStats(chunks)
	logger.InfoContext(ctx, "split into chunks", "chunks", stats.Count, "max_chars", p.opts.MaxChars, "largest", stats.Max)

	result := &Result{
		Document:   doc,
		Outline:    outline,
		Dir:        dir,
		ScriptPath: scriptPath,
		Chunks:     chunks,
		ChunkStats: stats,
		DryRun:     p.opts.DryRun,
	}

	if p.opts.DryRun {
		logger.InfoContext(ctx, "dry run, skipping synthesis")
		return result, nil
	}

	result.Report = NewDriver(p.synth, dir).SynthesizeAll(ctx, chunks)
	logger.InfoContext(ctx, "synthesis finished",
		"succeeded", result.Report.Succeeded(),
		"failed", result.Report.Failed(),
		"bytes", result.Report.TotalBytes(),
	)

	if p.opts.NoConcat || p.invoker == nil {
		return result, nil
	}

	concatResult := p.invoker.Run(ctx, dir, len(chunks))
	result.Concat = &concatResult
	switch concatResult.Outcome {
	case concat.Combined:
		logger.InfoContext(ctx, "combined audio saved", "path", concatResult.OutputPath, "bytes", concatResult.OutputBytes)
	case concat.Failed:
		logger.ErrorContext(ctx, "error combining files", "error", concatResult.Err)
	case concat.Skipped:
		logger.WarnContext(ctx, "container runtime not detected, skipping concatenation")
	}

	return result, nil
}
