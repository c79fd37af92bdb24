package tts

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_synthesizer.go -package=mocks talkdoc/internal/tts Synthesizer

import "context"

// Synthesizer converts text into encoded audio bytes.
// This interface is defined from the narrator's perspective (consumer-first).
type Synthesizer interface {
	// Synthesize returns the audio for text, or an error carrying the provider's message.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
