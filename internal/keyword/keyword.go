package keyword

import (
	"strings"

	"wordstats/internal/freq"
)

// Status classifies a keyword's density against fixed SEO-style thresholds.
type Status string

const (
	StatusAbsent  Status = "absent"
	StatusLow     Status = "low"
	StatusOptimal Status = "optimal"
	StatusHigh    Status = "high"
)

// Result is the density report for one requested keyword.
type Result struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
	Status  Status  `json:"status"`
}

// ParseList normalizes caller-supplied keyword input: every argument is
// split on commas, each piece trimmed and lowercased, empties dropped.
// Duplicates survive as separate entries so output rows track caller order.
func ParseList(raw ...string) []string {
	out := []string{}
	for _, chunk := range raw {
		for _, piece := range strings.Split(chunk, ",") {
			piece = strings.ToLower(strings.TrimSpace(piece))
			if piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

// Analyze reports count, density and status per keyword against the
// canonical word stream summarized by table. Matching is whole-token: a
// keyword counts only when it equals a tokenized word, never as a
// substring. No keywords or an empty text yields an empty slice.
func Analyze(table *freq.Table, totalWords int, keywords []string) []Result {
	results := make([]Result, 0, len(keywords))
	for _, kw := range keywords {
		count := 0
		if table != nil {
			count = table.Get(kw)
		}
		density := 0.0
		if totalWords > 0 {
			density = 100 * float64(count) / float64(totalWords)
		}
		results = append(results, Result{
			Keyword: kw,
			Count:   count,
			Density: density,
			Status:  statusFor(density),
		})
	}
	return results
}

func statusFor(density float64) Status {
	switch {
	case density == 0:
		return StatusAbsent
	case density < 0.5:
		return StatusLow
	case density <= 2.0:
		return StatusOptimal
	default:
		return StatusHigh
	}
}
