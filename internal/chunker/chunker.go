package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars is the default character budget per chunk.
// It stays below the 4096-character input limit of the speech API.
const DefaultMaxChars = 4000

// Chunk is a word-bounded segment of speech text sent to the synthesizer as one unit.
type Chunk struct {
	Index int    // 1-based position in the chunk sequence
	Text  string // Words joined by single spaces
}

// Split greedily packs whitespace-delimited words into chunks.
// Each word counts its rune length plus one separator; a chunk closes when the
// next word would push the running length past maxChars. Words are never split,
// so a single word longer than maxChars becomes a chunk on its own.
// A non-positive maxChars falls back to DefaultMaxChars.
func Split(text string, maxChars int) []Chunk {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var (
		chunks  []Chunk
		current []string
		length  int
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, Chunk{
			Index: len(chunks) + 1,
			Text:  strings.Join(current, " "),
		})
		current = nil
		length = 0
	}

	for _, word := range strings.Fields(text) {
		wordLength := utf8.RuneCountInString(word) + 1
		if length+wordLength > maxChars {
			flush()
		}
		current = append(current, word)
		length += wordLength
	}
	flush()

	return chunks
}

// Texts returns the text of each chunk in order.
func Texts(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
