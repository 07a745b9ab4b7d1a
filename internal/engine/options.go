package engine

import (
	"wordstats/internal/token"
)

// Default option values, matching the knobs exposed by the UI collaborator.
const (
	DefaultTopN          = 5
	DefaultLongestN      = 5
	DefaultHeatmapTopN   = 15
	DefaultHeatmapChunks = 20
)

// ReadingSpeedWPM is the fixed reading speed used for the estimated
// reading time.
const ReadingSpeedWPM = 225

// Options configures one analysis call. The zero value is valid and means
// "no derived listings"; DefaultOptions returns the interactive defaults.
type Options struct {
	TopN          int          `json:"top_n"`
	LongestN      int          `json:"longest_n"`
	HeatmapTopN   int          `json:"heatmap_top_n"`
	HeatmapChunks int          `json:"heatmap_chunks"`
	Keywords      []string     `json:"keywords"`
	Policy        token.Policy `json:"word_boundary_policy"`
}

func DefaultOptions() Options {
	return Options{
		TopN:          DefaultTopN,
		LongestN:      DefaultLongestN,
		HeatmapTopN:   DefaultHeatmapTopN,
		HeatmapChunks: DefaultHeatmapChunks,
		Policy:        token.AlphanumericUnderscore,
	}
}

// normalized clamps malformed configuration to sane values instead of
// failing: negative counts are treated as zero.
func (o Options) normalized() Options {
	if o.TopN < 0 {
		o.TopN = 0
	}
	if o.LongestN < 0 {
		o.LongestN = 0
	}
	if o.HeatmapTopN < 0 {
		o.HeatmapTopN = 0
	}
	if o.HeatmapChunks < 0 {
		o.HeatmapChunks = 0
	}
	return o
}
