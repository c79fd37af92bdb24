package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultBaseURL        = "https://api.openai.com/v1"
	DefaultModel          = openai.SpeechModelGPT4oMiniTTS
	DefaultVoice          = string(openai.AudioSpeechNewParamsVoiceAlloy)
	DefaultResponseFormat = string(openai.AudioSpeechNewParamsResponseFormatMP3)
	defaultRequestTimeout = 90 * time.Second
)

// Options configures an OpenAISynthesizer.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	Voice          string
	ResponseFormat string
	Timeout        time.Duration
}

// OpenAISynthesizer implements Synthesizer using the OpenAI speech endpoint.
type OpenAISynthesizer struct {
	client         openai.Client
	model          string
	voice          string
	responseFormat string
}

// NewOpenAISynthesizer creates an OpenAI-backed synthesizer.
// The SDK's automatic retries are disabled: a failed chunk is reported, not retried.
func NewOpenAISynthesizer(opts Options) (*OpenAISynthesizer, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Voice == "" {
		opts.Voice = DefaultVoice
	}
	if opts.ResponseFormat == "" {
		opts.ResponseFormat = DefaultResponseFormat
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultRequestTimeout
	}

	client := openai.NewClient(
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(strings.TrimRight(opts.BaseURL, "/")),
		option.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
		option.WithMaxRetries(0),
	)

	return &OpenAISynthesizer{
		client:         client,
		model:          opts.Model,
		voice:          opts.Voice,
		responseFormat: opts.ResponseFormat,
	}, nil
}

// Synthesize sends text to the speech endpoint and returns the encoded audio.
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          s.model,
		Voice:          openai.AudioSpeechNewParamsVoice(s.voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(s.responseFormat),
	})
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech endpoint returned no audio")
	}

	return audio, nil
}
