package engine

import (
	"strings"

	"wordstats/internal/freq"
	"wordstats/internal/heatmap"
	"wordstats/internal/keyword"
	"wordstats/internal/readability"
	"wordstats/internal/token"
)

// Engine computes a StatsReport from a text buffer. It holds no state
// between calls beyond the choice of tokenizer backend, so one Engine can
// serve any number of concurrent callers.
type Engine struct {
	scanner token.Scanner
}

// New returns an engine backed by the optimized single-pass scanner.
func New() *Engine {
	return &Engine{scanner: token.FastScanner{}}
}

// NewReference returns an engine backed by the regexp reference scanner.
// Both engines must produce identical reports for identical input; the
// reference exists as the conformance baseline for the fast path.
func NewReference() *Engine {
	return &Engine{scanner: token.RegexpScanner{}}
}

// Backend names the tokenizer backend in use.
func (e *Engine) Backend() string { return e.scanner.Name() }

// Analyze produces a complete report for text. It never fails on valid
// text: malformed options are clamped and empty or whitespace-only input
// yields a fully zeroed report with empty collections.
func (e *Engine) Analyze(text string, opts Options) *Report {
	opts = opts.normalized()
	if strings.TrimSpace(text) == "" {
		return emptyReport()
	}

	res := e.scanner.Scan(text, opts.Policy)
	words := res.Canonicals()
	table := freq.Count(words)

	vocabulary := make([]string, 0, opts.HeatmapTopN)
	for _, entry := range table.TopN(opts.HeatmapTopN) {
		vocabulary = append(vocabulary, entry.Word)
	}

	return &Report{
		Words:              len(words),
		Characters:         res.Characters,
		CharactersNoSpaces: res.CharactersNoSpace,
		Sentences:          res.Sentences,
		Paragraphs:         res.Paragraphs,
		UniqueWords:        table.Unique(),
		AvgWordLength:      freq.AverageLength(words),
		ReadingTimeSeconds: len(words) * 60 / ReadingSpeedWPM,
		TopWords:           table.TopN(opts.TopN),
		LongestWords:       table.LongestN(opts.LongestN),
		Heatmap:            heatmap.Build(text, vocabulary, opts.HeatmapChunks, opts.Policy, e.scanner),
		Readability:        readability.Score(words, res.Sentences),
		Keywords:           keyword.Analyze(table, len(words), keyword.ParseList(opts.Keywords...)),
	}
}

func emptyReport() *Report {
	return &Report{
		TopWords:     []freq.Entry{},
		LongestWords: []string{},
		Heatmap:      heatmap.Matrix{Words: []string{}, Chunks: []heatmap.Chunk{}, Counts: [][]int{}},
		Readability:  readability.Score(nil, 0),
		Keywords:     []keyword.Result{},
	}
}
