package engine

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"wordstats/internal/keyword"
)

const sampleText = "The cat sat on the mat. The cat ran."

func TestAnalyzeSampleText(t *testing.T) {
	report := New().Analyze(sampleText, DefaultOptions())

	if report.Words != 9 {
		t.Fatalf("expected 9 words, got %d", report.Words)
	}
	if report.Sentences != 2 {
		t.Fatalf("expected 2 sentences, got %d", report.Sentences)
	}
	if report.Paragraphs != 1 {
		t.Fatalf("expected 1 paragraph, got %d", report.Paragraphs)
	}
	if report.UniqueWords != 6 {
		t.Fatalf("expected 6 unique words, got %d", report.UniqueWords)
	}

	// Top words follow count desc with first-seen tie-break: "the" leads,
	// then "cat"; the singletons keep text order.
	if len(report.TopWords) != 5 {
		t.Fatalf("expected 5 top words, got %d", len(report.TopWords))
	}
	if report.TopWords[0].Word != "the" || report.TopWords[0].Count != 3 {
		t.Fatalf("unexpected leading top word: %+v", report.TopWords[0])
	}
	if report.TopWords[1].Word != "cat" || report.TopWords[1].Count != 2 {
		t.Fatalf("unexpected second top word: %+v", report.TopWords[1])
	}
	if report.TopWords[2].Word != "sat" {
		t.Fatalf("singleton order must be first-seen, got %+v", report.TopWords[2])
	}
}

func TestFrequencySumEqualsWordCount(t *testing.T) {
	texts := []string{
		sampleText,
		"one",
		"Repeat repeat REPEAT! And again, again.",
		"Mixed 123 content_with underscores and words words words.",
	}
	for _, text := range texts {
		report := New().Analyze(text, Options{TopN: 1 << 20, Policy: 0})
		sum := 0
		for _, e := range report.TopWords {
			sum += e.Count
		}
		if sum != report.Words {
			t.Fatalf("%q: frequency sum %d != word count %d", text, sum, report.Words)
		}
		if report.UniqueWords > report.Words {
			t.Fatalf("%q: unique %d exceeds words %d", text, report.UniqueWords, report.Words)
		}
	}
}

func TestEmptyAndWhitespaceInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n\t  "} {
		report := New().Analyze(text, DefaultOptions())
		if report.Words != 0 || report.Characters != 0 || report.CharactersNoSpaces != 0 ||
			report.Sentences != 0 || report.Paragraphs != 0 || report.UniqueWords != 0 ||
			report.AvgWordLength != 0 || report.ReadingTimeSeconds != 0 {
			t.Fatalf("%q: expected all-zero numeric fields, got %+v", text, report)
		}
		if report.TopWords == nil || len(report.TopWords) != 0 {
			t.Fatalf("%q: top words must be empty, not nil/populated", text)
		}
		if report.LongestWords == nil || len(report.LongestWords) != 0 {
			t.Fatalf("%q: longest words must be empty, not nil/populated", text)
		}
		if report.Keywords == nil || len(report.Keywords) != 0 {
			t.Fatalf("%q: keywords must be empty, not nil/populated", text)
		}
		if !report.Heatmap.Empty() {
			t.Fatalf("%q: heatmap must be empty", text)
		}
		if report.Readability.Level != "Very Difficult" {
			t.Fatalf("%q: zero score must classify through the bottom band, got %q", text, report.Readability.Level)
		}
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.Keywords = []string{"cat, mat"}
	a := New().Analyze(sampleText, opts)
	b := New().Analyze(sampleText, opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestBackendsProduceIdenticalReports(t *testing.T) {
	texts := []string{
		"",
		"   ",
		sampleText,
		"Paragraph one with Words.\n\nParagraph two! Shorter?\n\n\nThird... paragraph's end",
		"Äpfel und Birnen überall. Zahlen 42 und _namen_ zählen auch.",
		strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 40),
	}
	opts := DefaultOptions()
	opts.Keywords = []string{"words, lorem", "zahlen"}

	fast := New()
	ref := NewReference()
	for _, text := range texts {
		a := fast.Analyze(text, opts)
		b := ref.Analyze(text, opts)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("backends disagree on %.40q:\nfast=%+v\nreference=%+v", text, a, b)
		}
	}
}

func TestReportRoundTripsThroughJSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Keywords = []string{"cat, bird"}
	original := New().Analyze(sampleText, opts)

	raw, err := original.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("report did not round-trip:\noriginal=%+v\ndecoded=%+v", original, decoded)
	}
}

func TestNegativeOptionsAreClamped(t *testing.T) {
	report := New().Analyze(sampleText, Options{
		TopN:          -3,
		LongestN:      -1,
		HeatmapTopN:   -5,
		HeatmapChunks: -20,
	})
	if len(report.TopWords) != 0 || len(report.LongestWords) != 0 || !report.Heatmap.Empty() {
		t.Fatalf("negative options must behave as zero, got %+v", report)
	}
	if report.Words != 9 {
		t.Fatalf("basic counts must survive clamping, got %d words", report.Words)
	}
}

func TestKeywordDensityThroughEngine(t *testing.T) {
	opts := DefaultOptions()
	opts.Keywords = []string{"cat, bird"}
	report := New().Analyze("cat cat dog", opts)

	if len(report.Keywords) != 2 {
		t.Fatalf("expected 2 keyword rows, got %d", len(report.Keywords))
	}
	cat := report.Keywords[0]
	if cat.Count != 2 || math.Abs(cat.Density-200.0/3.0) > 1e-9 || cat.Status != keyword.StatusHigh {
		t.Fatalf("unexpected cat row: %+v", cat)
	}
	bird := report.Keywords[1]
	if bird.Count != 0 || bird.Density != 0 || bird.Status != keyword.StatusAbsent {
		t.Fatalf("unexpected bird row: %+v", bird)
	}
}

func TestReadingTime(t *testing.T) {
	words := make([]string, 450)
	for i := range words {
		words[i] = "word"
	}
	report := New().Analyze(strings.Join(words, " "), DefaultOptions())
	// 450 words at 225 WPM is exactly two minutes.
	if report.ReadingTimeSeconds != 120 {
		t.Fatalf("expected 120 seconds, got %d", report.ReadingTimeSeconds)
	}

	short := New().Analyze("just a few words here", DefaultOptions())
	// floor(5/225*60) = 1
	if short.ReadingTimeSeconds != 1 {
		t.Fatalf("expected 1 second, got %d", short.ReadingTimeSeconds)
	}
}

func TestHeatmapVocabularyFollowsTopOrder(t *testing.T) {
	opts := DefaultOptions()
	report := New().Analyze(sampleText, opts)
	if report.Heatmap.Empty() {
		t.Fatalf("expected a populated heatmap")
	}
	if report.Heatmap.Words[0] != "the" {
		t.Fatalf("heatmap rows must follow top-word order, got %v", report.Heatmap.Words)
	}
	rowSum := 0
	for _, n := range report.Heatmap.Counts[0] {
		rowSum += n
	}
	if rowSum > 3 {
		t.Fatalf("chunk counts can lose seam-split words but never invent them, got %d", rowSum)
	}
}

func TestMonosyllabicFleschNearTop(t *testing.T) {
	report := New().Analyze("The cat sat on the mat.", DefaultOptions())
	if report.Readability.FleschReadingEase != 100 {
		t.Fatalf("expected clamped 100, got %f", report.Readability.FleschReadingEase)
	}
}
