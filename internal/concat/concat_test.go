package concat

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"talkdoc/internal/concat/mocks"
	"talkdoc/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filelist.txt")

	if err := WriteManifest(path, 3); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	want := "file 'voice_part_001.mp3'\nfile 'voice_part_002.mp3'\nfile 'voice_part_003.mp3'\n"
	if string(got) != want {
		t.Errorf("manifest = %q, want %q", got, want)
	}
}

func TestWriteManifest_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filelist.txt")

	if err := WriteManifest(path, 0); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}
	if got, _ := os.ReadFile(path); len(got) != 0 {
		t.Errorf("manifest = %q, want empty", got)
	}
}

func TestManualCommand(t *testing.T) {
	got := ManualCommand("", "", "audio/Guide")

	for _, want := range []string{
		"cd audio/Guide",
		`docker run --rm -v "$(pwd):/tmp" -w /tmp linuxserver/ffmpeg`,
		"-f concat -safe 0 -i filelist.txt -c copy voice_complete.mp3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ManualCommand() = %q, missing %q", got, want)
		}
	}

	if got := ManualCommand("podman", "my/ffmpeg", "x"); !strings.Contains(got, "podman run") || !strings.Contains(got, "my/ffmpeg") {
		t.Errorf("ManualCommand() should honor runtime and image, got %q", got)
	}
}

func TestInvoker_Run_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConcat := mocks.NewMockConcatenator(ctrl)
	mockConcat.EXPECT().Probe(gomock.Any()).Return(false)
	// Concat must not be called.

	dir := storage.NewOutputDir(t.TempDir(), "Doc")
	if err := dir.Create(); err != nil {
		t.Fatal(err)
	}

	res := NewInvoker(mockConcat, "docker", "linuxserver/ffmpeg").Run(context.Background(), dir, 3)

	if res.Outcome != Skipped {
		t.Errorf("Run() Outcome = %v, want skipped", res.Outcome)
	}
	if res.Manual == "" {
		t.Error("Run() should provide manual instructions when skipped")
	}
	if _, err := os.Stat(dir.ManifestPath()); !os.IsNotExist(err) {
		t.Error("Run() should not write a manifest when the runtime is unavailable")
	}
}

func TestInvoker_Run_Combined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := storage.NewOutputDir(t.TempDir(), "Doc")
	if err := dir.Create(); err != nil {
		t.Fatal(err)
	}

	mockConcat := mocks.NewMockConcatenator(ctrl)
	gomock.InOrder(
		mockConcat.EXPECT().Probe(gomock.Any()).Return(true),
		mockConcat.EXPECT().Concat(gomock.Any(), dir.Path, "filelist.txt", "voice_complete.mp3").
			DoAndReturn(func(_ context.Context, d, _, out string) error {
				return os.WriteFile(filepath.Join(d, out), []byte("combined"), 0o644)
			}),
	)

	res := NewInvoker(mockConcat, "", "").Run(context.Background(), dir, 2)

	if res.Outcome != Combined {
		t.Fatalf("Run() Outcome = %v, want combined (err=%v)", res.Outcome, res.Err)
	}
	if res.OutputPath != dir.CombinedPath() {
		t.Errorf("Run() OutputPath = %q, want %q", res.OutputPath, dir.CombinedPath())
	}
	if res.OutputBytes != int64(len("combined")) {
		t.Errorf("Run() OutputBytes = %d, want %d", res.OutputBytes, len("combined"))
	}
	manifest, _ := os.ReadFile(dir.ManifestPath())
	if strings.Count(string(manifest), "file '") != 2 {
		t.Errorf("manifest = %q, want 2 entries", manifest)
	}
}

func TestInvoker_Run_ConcatFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := storage.NewOutputDir(t.TempDir(), "Doc")
	if err := dir.Create(); err != nil {
		t.Fatal(err)
	}

	mockConcat := mocks.NewMockConcatenator(ctrl)
	mockConcat.EXPECT().Probe(gomock.Any()).Return(true)
	mockConcat.EXPECT().Concat(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1"))

	res := NewInvoker(mockConcat, "", "").Run(context.Background(), dir, 3)

	if res.Outcome != Failed {
		t.Fatalf("Run() Outcome = %v, want failed", res.Outcome)
	}
	if res.Err == nil || res.Manual == "" {
		t.Errorf("Run() should carry the error and manual instructions, got %+v", res)
	}
	manifest, _ := os.ReadFile(dir.ManifestPath())
	if strings.Count(string(manifest), "file '") != 3 {
		t.Errorf("manifest = %q, want 3 entries", manifest)
	}
}

func TestOutcome_String(t *testing.T) {
	tests := map[Outcome]string{
		Skipped:    "skipped",
		Combined:   "combined",
		Failed:     "failed",
		Outcome(9): "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}

func requireUnixTools(t *testing.T, tools ...string) {
	t.Helper()
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available: %v", tool, err)
		}
	}
}

func TestDockerConcatenator_Probe(t *testing.T) {
	requireUnixTools(t, "true", "false", "sleep")

	tests := []struct {
		name    string
		runtime string
		command func(ctx context.Context, name string, args ...string) *exec.Cmd
		want    bool
	}{
		{
			name:    "missing executable",
			runtime: "talkdoc-no-such-runtime",
			want:    false,
		},
		{
			name:    "non-zero exit",
			runtime: "false",
			want:    false,
		},
		{
			name:    "available",
			runtime: "true",
			want:    true,
		},
		{
			name:    "timeout",
			runtime: "docker",
			command: func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
				return exec.CommandContext(ctx, "sleep", "5")
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDockerConcatenator(DockerOptions{Runtime: tt.runtime, ProbeTimeout: 100 * time.Millisecond})
			if tt.command != nil {
				d.execCommand = tt.command
			}
			if got := d.Probe(context.Background()); got != tt.want {
				t.Errorf("Probe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDockerConcatenator_Concat(t *testing.T) {
	requireUnixTools(t, "true", "sh")

	var gotName string
	var gotArgs []string
	d := NewDockerConcatenator(DockerOptions{})
	d.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	}

	dir := t.TempDir()
	if err := d.Concat(context.Background(), dir, "filelist.txt", "voice_complete.mp3"); err != nil {
		t.Fatalf("Concat() error = %v", err)
	}

	if gotName != "docker" {
		t.Errorf("Concat() executable = %q, want docker", gotName)
	}
	absDir, _ := filepath.Abs(dir)
	want := []string{
		"run", "--rm", "-v", absDir + ":/tmp", "-w", "/tmp", "linuxserver/ffmpeg",
		"-f", "concat", "-safe", "0", "-i", "filelist.txt", "-c", "copy", "voice_complete.mp3",
	}
	if strings.Join(gotArgs, " ") != strings.Join(want, " ") {
		t.Errorf("Concat() args = %q, want %q", gotArgs, want)
	}

	d.execCommand = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "echo 'filelist.txt: No such file' >&2; exit 1")
	}
	err := d.Concat(context.Background(), dir, "filelist.txt", "voice_complete.mp3")
	if err == nil {
		t.Fatal("Concat() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "No such file") {
		t.Errorf("Concat() error = %v, want stderr detail", err)
	}
}
