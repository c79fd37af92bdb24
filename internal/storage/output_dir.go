package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultRoot      = "audio"
	ScriptFileName   = "speech_script.txt"
	ManifestFileName = "filelist.txt"
	CombinedFileName = "voice_complete.mp3"
	segmentPattern   = "voice_part_%03d.mp3"
)

// OutputDir is the per-document directory holding the speech script and audio files.
// It is created once and never cleaned up.
type OutputDir struct {
	Path string
}

// NewOutputDir returns the output directory for name under root (default "audio").
func NewOutputDir(root, name string) *OutputDir {
	if root == "" {
		root = DefaultRoot
	}
	return &OutputDir{Path: filepath.Join(root, name)}
}

// Create makes the directory and any missing parents.
func (d *OutputDir) Create() error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", d.Path, err)
	}
	return nil
}

// SegmentName returns the audio segment file name for a 1-based chunk index.
func SegmentName(index int) string {
	return fmt.Sprintf(segmentPattern, index)
}

// SegmentPath returns the full path of the audio segment for a 1-based chunk index.
func (d *OutputDir) SegmentPath(index int) string {
	return filepath.Join(d.Path, SegmentName(index))
}

func (d *OutputDir) ScriptPath() string   { return filepath.Join(d.Path, ScriptFileName) }
func (d *OutputDir) ManifestPath() string { return filepath.Join(d.Path, ManifestFileName) }
func (d *OutputDir) CombinedPath() string { return filepath.Join(d.Path, CombinedFileName) }

// WriteScript saves the speech script text.
func (d *OutputDir) WriteScript(text string) (string, error) {
	path := d.ScriptPath()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write speech script: %w", err)
	}
	return path, nil
}

// WriteSegment saves the audio bytes for a 1-based chunk index and returns the path.
func (d *OutputDir) WriteSegment(index int, data []byte) (string, error) {
	path := d.SegmentPath(index)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio segment %d: %w", index, err)
	}
	return path, nil
}
