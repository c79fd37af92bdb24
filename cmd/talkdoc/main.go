package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"talkdoc/internal/concat"
	"talkdoc/internal/config"
	"talkdoc/internal/contextutil"
	"talkdoc/internal/narrator"
	"talkdoc/internal/tts"
)

const defaultInput = "script.md"

type flags struct {
	maxChars int
	output   string
	dryRun   bool
	noConcat bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "talkdoc [input.md]",
		Short: "Turn a markdown document into a narrated audio explanation",
		Long: `talkdoc rewrites markdown into speakable prose, splits it into chunks,
synthesizes each chunk with the OpenAI speech API and, when a container runtime
is available, combines the segments into one file with ffmpeg.

Output is written to audio/<document-title>/.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, input, f)
		},
	}

	cmd.Flags().IntVar(&f.maxChars, "max-chars", 0, "maximum characters per TTS chunk (overrides CHUNK_MAX_CHARS)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "root directory for audio output (overrides AUDIO_DIR)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "write the speech script and show chunking without calling the TTS API")
	cmd.Flags().BoolVar(&f.noConcat, "no-concat", false, "skip combining audio segments")

	return cmd
}

func run(cmd *cobra.Command, input string, f flags) error {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(out, cfg)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	opts := narrator.Options{
		AudioRoot: cfg.AudioDir,
		MaxChars:  cfg.ChunkMaxChars,
		DryRun:    f.dryRun,
		NoConcat:  f.noConcat,
	}
	if f.output != "" {
		opts.AudioRoot = f.output
	}
	if f.maxChars > 0 {
		opts.MaxChars = f.maxChars
	}

	synth, err := tts.NewOpenAISynthesizer(tts.Options{
		APIKey:         cfg.OpenAIAPIKey,
		BaseURL:        cfg.OpenAIBaseURL,
		Model:          cfg.TTSModel,
		Voice:          cfg.TTSVoice,
		ResponseFormat: cfg.TTSResponseFormat,
		Timeout:        cfg.TTSTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create TTS client: %w", err)
	}

	concatenator := concat.NewDockerConcatenator(concat.DockerOptions{
		Runtime: cfg.ContainerRuntime,
		Image:   cfg.FFmpegImage,
	})
	invoker := concat.NewInvoker(concatenator, cfg.ContainerRuntime, cfg.FFmpegImage)

	ctx := contextutil.WithRunID(cmd.Context(), logger)
	slog.Debug("TTS configuration", "base_url", cfg.OpenAIBaseURL, "model", cfg.TTSModel, "voice", cfg.TTSVoice)

	result, err := narrator.NewPipeline(synth, invoker, opts).Run(ctx, input)
	if err != nil {
		return err
	}

	printSummary(out, result)
	return nil
}

// newLogger configures structured logging with configurable level and format.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// printSummary writes the end-of-run report the user acts on.
func printSummary(w io.Writer, res *narrator.Result) {
	rule := strings.Repeat("=", 60)

	if res.DryRun {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Speech script: %s\n", res.ScriptPath)
		fmt.Fprintf(w, "Chunks: %d (words %d, chars min %d / mean %.0f / max %d)\n",
			res.ChunkStats.Count, res.ChunkStats.Words, res.ChunkStats.Min, res.ChunkStats.Mean, res.ChunkStats.Max)
		if len(res.Outline) > 0 {
			fmt.Fprintln(w, "Outline:")
			for _, h := range res.Outline {
				fmt.Fprintf(w, "  %s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
			}
		}
		fmt.Fprintln(w, rule)
		return
	}

	fmt.Fprintln(w, rule)
	if res.Report.Failed() == 0 {
		fmt.Fprintln(w, "All audio chunks generated successfully!")
	} else {
		fmt.Fprintf(w, "Generated %d of %d audio chunks (%d failed).\n",
			res.Report.Succeeded(), res.Report.Total(), res.Report.Failed())
	}
	fmt.Fprintf(w, "Location: %s/\n", res.Dir.Path)
	fmt.Fprintf(w, "Total files: %d MP3 files\n", res.Report.Succeeded())
	fmt.Fprintln(w, rule)

	if res.Concat == nil {
		return
	}

	switch res.Concat.Outcome {
	case concat.Combined:
		fmt.Fprintf(w, "Combined audio saved: %s\n", res.Concat.OutputPath)
		fmt.Fprintf(w, "File size: %.2f MB\n", float64(res.Concat.OutputBytes)/(1024*1024))
	case concat.Failed:
		fmt.Fprintf(w, "Error combining files: %v\n", res.Concat.Err)
		fmt.Fprintln(w, "You can manually combine using the command below.")
		fmt.Fprintf(w, "\n%s\n", res.Concat.Manual)
	case concat.Skipped:
		fmt.Fprintln(w, "Container runtime not detected.")
		fmt.Fprintln(w, "To combine audio files, run:")
		fmt.Fprintf(w, "\n%s\n", res.Concat.Manual)
	}
}
