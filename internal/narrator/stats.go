package narrator

import (
	"unicode/utf8"

	"talkdoc/internal/chunker"
)

// ChunkSizeStats summarizes chunk lengths in runes.
type ChunkSizeStats struct {
	// Count is the number of chunks.
	Count int `json:"count"`
	// Words is the total number of words across all chunks.
	Words int `json:"words"`
	// Min is the smallest chunk length.
	Min int `json:"min"`
	// Max is the largest chunk length.
	Max int `json:"max"`
	// Mean is the mean chunk length.
	Mean float64 `json:"mean"`
}

// ComputeChunkSizeStats computes length statistics over chunks.
func ComputeChunkSizeStats(chunks []chunker.Chunk) ChunkSizeStats {
	stats := ChunkSizeStats{Count: len(chunks)}
	if len(chunks) == 0 {
		return stats
	}

	total := 0
	for i, c := range chunks {
		n := utf8.RuneCountInString(c.Text)
		total += n
		stats.Words += countWords(c.Text)
		if i == 0 || n < stats.Min {
			stats.Min = n
		}
		if n > stats.Max {
			stats.Max = n
		}
	}
	stats.Mean = float64(total) / float64(len(chunks))

	return stats
}

// countWords counts single-space separated words; chunk text has no other separators.
func countWords(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			n++
		}
	}
	return n
}
