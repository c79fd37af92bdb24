package concat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultRuntime      = "docker"
	DefaultImage        = "linuxserver/ffmpeg"
	DefaultProbeTimeout = 5 * time.Second
)

// DockerOptions configures a DockerConcatenator.
type DockerOptions struct {
	Runtime      string        // Container runtime executable (docker, podman)
	Image        string        // ffmpeg image to run
	ProbeTimeout time.Duration // Timeout for the "info" availability check
}

// DockerConcatenator runs ffmpeg's concat demuxer inside a container.
type DockerConcatenator struct {
	runtime      string
	image        string
	probeTimeout time.Duration
	execCommand  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewDockerConcatenator creates a container-backed Concatenator.
func NewDockerConcatenator(opts DockerOptions) *DockerConcatenator {
	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}
	if opts.Image == "" {
		opts.Image = DefaultImage
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = DefaultProbeTimeout
	}
	return &DockerConcatenator{
		runtime:      opts.Runtime,
		image:        opts.Image,
		probeTimeout: opts.ProbeTimeout,
		execCommand:  exec.CommandContext,
	}
}

// Probe runs "<runtime> info". A missing executable, timeout or non-zero exit reports false.
func (d *DockerConcatenator) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()

	cmd := d.execCommand(ctx, d.runtime, "info")
	return cmd.Run() == nil
}

// Args returns the runtime arguments used to merge the manifest in dir.
func (d *DockerConcatenator) Args(absDir, manifestName, outputName string) []string {
	return []string{
		"run", "--rm",
		"-v", absDir + ":/tmp",
		"-w", "/tmp",
		d.image,
		"-f", "concat", "-safe", "0",
		"-i", manifestName,
		"-c", "copy",
		outputName,
	}
}

// Concat mounts dir into the container and stream-copies the listed segments into outputName.
func (d *DockerConcatenator) Concat(ctx context.Context, dir, manifestName, outputName string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	var stderr bytes.Buffer
	cmd := d.execCommand(ctx, d.runtime, d.Args(absDir, manifestName, outputName)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("%s run failed: %w: %s", d.runtime, err, msg)
		}
		return fmt.Errorf("%s run failed: %w", d.runtime, err)
	}
	return nil
}

// lastLine returns the last non-empty line of s, where ffmpeg puts its error.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
