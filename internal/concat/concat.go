package concat

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_concatenator.go -package=mocks talkdoc/internal/concat Concatenator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"talkdoc/internal/storage"
)

// Concatenator merges the audio segments listed in a manifest into one file.
type Concatenator interface {
	// Probe reports whether the backing tool is reachable. It never fails.
	Probe(ctx context.Context) bool
	// Concat merges the segments listed in manifestName into outputName.
	// Both names are relative to dir.
	Concat(ctx context.Context, dir, manifestName, outputName string) error
}

// WriteManifest writes the concat manifest listing every expected segment in index order.
// Entries are written for all indexes 1..count whether or not the segment file exists.
func WriteManifest(path string, count int) error {
	var b strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "file '%s'\n", storage.SegmentName(i))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ManualCommand returns the shell instructions a user can run to combine the segments themselves.
func ManualCommand(runtime, image, dir string) string {
	if runtime == "" {
		runtime = DefaultRuntime
	}
	if image == "" {
		image = DefaultImage
	}
	return fmt.Sprintf("cd %s\n%s run --rm -v \"$(pwd):/tmp\" -w /tmp %s \\\n  -f concat -safe 0 -i %s -c copy %s",
		dir, runtime, image, storage.ManifestFileName, storage.CombinedFileName)
}

// Outcome describes what the concatenation step did.
type Outcome int

const (
	// Skipped means the runtime was unavailable; nothing was invoked.
	Skipped Outcome = iota
	// Combined means the combined audio file was produced.
	Combined
	// Failed means the runtime was invoked but the merge did not succeed.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Combined:
		return "combined"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result reports the outcome of Invoker.Run.
type Result struct {
	Outcome      Outcome
	ManifestPath string // Empty when skipped
	OutputPath   string // Set only when combined
	OutputBytes  int64
	Err          error  // Set only when failed
	Manual       string // Manual command, set when skipped or failed
}

// Invoker drives the optional concatenation of segments after synthesis.
type Invoker struct {
	concatenator Concatenator
	runtime      string
	image        string
}

// NewInvoker creates an Invoker. runtime and image are only used to render manual instructions.
func NewInvoker(c Concatenator, runtime, image string) *Invoker {
	return &Invoker{concatenator: c, runtime: runtime, image: image}
}

// Run probes the runtime and, if available, writes the manifest for count
// segments and merges them. Failures are reported in the Result, never returned.
func (inv *Invoker) Run(ctx context.Context, dir *storage.OutputDir, count int) Result {
	manual := ManualCommand(inv.runtime, inv.image, dir.Path)

	if !inv.concatenator.Probe(ctx) {
		return Result{Outcome: Skipped, Manual: manual}
	}

	manifest := dir.ManifestPath()
	if err := WriteManifest(manifest, count); err != nil {
		return Result{Outcome: Failed, Err: err, Manual: manual}
	}

	if err := inv.concatenator.Concat(ctx, dir.Path, filepath.Base(manifest), storage.CombinedFileName); err != nil {
		return Result{Outcome: Failed, ManifestPath: manifest, Err: err, Manual: manual}
	}

	output := dir.CombinedPath()
	res := Result{Outcome: Combined, ManifestPath: manifest, OutputPath: output}
	if info, err := os.Stat(output); err == nil {
		res.OutputBytes = info.Size()
	}
	return res
}
