package heatmap

import (
	"wordstats/internal/token"
)

// Chunk is a contiguous rune range [Start,End) of the analyzed text.
type Chunk struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Matrix is a word-by-chunk occurrence grid. Rows keep the order of the
// vocabulary they were built from; columns are chunk index ascending. A
// vocabulary word absent from a chunk holds a zero, never a missing cell.
type Matrix struct {
	Words  []string `json:"words"`
	Chunks []Chunk  `json:"chunks"`
	Counts [][]int  `json:"counts"`
}

// Empty reports whether the matrix carries no data.
func (m Matrix) Empty() bool { return len(m.Words) == 0 || len(m.Chunks) == 0 }

// Build partitions text into at most chunkCount contiguous rune ranges and
// counts each vocabulary word per chunk. Chunk boundaries ignore word
// boundaries: a word cut by a seam is tokenized as two fragments, which is
// accepted since chunks exist for positional density, not segmentation.
//
// The produced chunk count is min(chunkCount, rune length); empty text or
// an empty vocabulary yields an empty matrix rather than an error.
func Build(text string, vocabulary []string, chunkCount int, policy token.Policy, scanner token.Scanner) Matrix {
	empty := Matrix{Words: []string{}, Chunks: []Chunk{}, Counts: [][]int{}}
	if len(vocabulary) == 0 || chunkCount <= 0 {
		return empty
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return empty
	}
	if chunkCount > len(runes) {
		chunkCount = len(runes)
	}

	rows := make(map[string]int, len(vocabulary))
	words := make([]string, len(vocabulary))
	copy(words, vocabulary)
	for i, w := range words {
		rows[w] = i
	}

	width := len(runes) / chunkCount
	chunks := make([]Chunk, 0, chunkCount)
	counts := make([][]int, len(words))
	for i := range counts {
		counts[i] = make([]int, chunkCount)
	}

	for c := 0; c < chunkCount; c++ {
		start := c * width
		end := start + width
		if c == chunkCount-1 {
			// The final chunk absorbs the division remainder.
			end = len(runes)
		}
		chunks = append(chunks, Chunk{Start: start, End: end})

		res := scanner.Scan(string(runes[start:end]), policy)
		for _, w := range res.Words {
			if row, ok := rows[w.Canonical]; ok {
				counts[row][c]++
			}
		}
	}

	return Matrix{Words: words, Chunks: chunks, Counts: counts}
}
