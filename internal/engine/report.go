package engine

import (
	"encoding/json"
	"fmt"

	"wordstats/internal/freq"
	"wordstats/internal/heatmap"
	"wordstats/internal/keyword"
	"wordstats/internal/readability"
)

// Report is the immutable statistics aggregate returned by one analysis
// call. It is owned by the caller; the engine never retains or mutates a
// returned report. Field names follow the established export wire format.
type Report struct {
	Words              int                `json:"words"`
	Characters         int                `json:"characters"`
	CharactersNoSpaces int                `json:"characters_no_spaces"`
	Sentences          int                `json:"sentences"`
	Paragraphs         int                `json:"paragraphs"`
	UniqueWords        int                `json:"unique_words"`
	AvgWordLength      float64            `json:"avg_word_length"`
	ReadingTimeSeconds int                `json:"reading_time_seconds"`
	TopWords           []freq.Entry       `json:"top_words"`
	LongestWords       []string           `json:"longest_words"`
	Heatmap            heatmap.Matrix     `json:"heatmap"`
	Readability        readability.Scores `json:"readability"`
	Keywords           []keyword.Result   `json:"keywords"`
}

// Encode serializes the report as indented JSON.
func (r *Report) Encode() ([]byte, error) {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return raw, nil
}

// Decode reconstructs a report serialized by Encode. The decoded value
// must compare equal to the original, numeric fields and collections both.
func Decode(raw []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}
