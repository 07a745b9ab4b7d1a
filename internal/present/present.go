package present

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"wordstats/internal/engine"
)

// Row is one labelled display value. The adapter only formats report
// fields for display; every number it shows was computed by the engine.
type Row struct {
	Label string
	Value string
}

// Rows maps the report's basic counts to display rows in the order the
// stats panel presents them.
func Rows(r *engine.Report) []Row {
	return []Row{
		{"Words", humanize.Comma(int64(r.Words))},
		{"Characters", humanize.Comma(int64(r.Characters))},
		{"Characters (no spaces)", humanize.Comma(int64(r.CharactersNoSpaces))},
		{"Sentences", humanize.Comma(int64(r.Sentences))},
		{"Paragraphs", humanize.Comma(int64(r.Paragraphs))},
		{"Unique Words", humanize.Comma(int64(r.UniqueWords))},
		{"Avg Word Length", fmt.Sprintf("%.2f", r.AvgWordLength)},
		{"Reading Time", ReadingTime(r.ReadingTimeSeconds)},
	}
}

// ReadingTime renders seconds as "NNs (Mm)".
func ReadingTime(seconds int) string {
	return fmt.Sprintf("%ds (%dm)", seconds, seconds/60)
}

// TopWordLines renders the top-word listing as "word: count" lines.
func TopWordLines(r *engine.Report) []string {
	lines := make([]string, 0, len(r.TopWords))
	for _, e := range r.TopWords {
		lines = append(lines, fmt.Sprintf("%s: %d", e.Word, e.Count))
	}
	return lines
}

// LongestWordLines renders the longest-word listing as "word (N chars)".
func LongestWordLines(r *engine.Report) []string {
	lines := make([]string, 0, len(r.LongestWords))
	for _, w := range r.LongestWords {
		lines = append(lines, fmt.Sprintf("%s (%d chars)", w, utf8.RuneCountInString(w)))
	}
	return lines
}

// KeywordLines renders keyword density rows as "keyword: N (P%, status)".
func KeywordLines(r *engine.Report) []string {
	lines := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		lines = append(lines, fmt.Sprintf("%s: %d (%.2f%%, %s)", k.Keyword, k.Count, k.Density, k.Status))
	}
	return lines
}

// ReadabilityLines renders the six indices plus the classification.
func ReadabilityLines(r *engine.Report) []string {
	s := r.Readability
	return []string{
		fmt.Sprintf("Flesch Reading Ease: %.2f", s.FleschReadingEase),
		fmt.Sprintf("Flesch-Kincaid Grade: %.2f", s.FleschKincaidGrade),
		fmt.Sprintf("Gunning Fog: %.2f", s.GunningFog),
		fmt.Sprintf("Coleman-Liau: %.2f", s.ColemanLiau),
		fmt.Sprintf("SMOG: %.2f", s.SMOG),
		fmt.Sprintf("Automated Readability: %.2f", s.AutomatedReadability),
		fmt.Sprintf("Reading Level: %s (%s)", s.Level, s.Audience),
	}
}

// Render produces the full plain-text view of a report.
func Render(r *engine.Report) string {
	var b strings.Builder

	b.WriteString("STATISTICS\n")
	for _, row := range Rows(r) {
		fmt.Fprintf(&b, "  %-24s %s\n", row.Label, row.Value)
	}

	writeSection(&b, "TOP WORDS", TopWordLines(r))
	writeSection(&b, "LONGEST WORDS", LongestWordLines(r))
	writeSection(&b, "READABILITY", ReadabilityLines(r))
	if len(r.Keywords) > 0 {
		writeSection(&b, "KEYWORD DENSITY", KeywordLines(r))
	}
	if !r.Heatmap.Empty() {
		writeSection(&b, "DISTRIBUTION", heatmapLines(r))
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, lines []string) {
	b.WriteString("\n" + title + "\n")
	if len(lines) == 0 {
		b.WriteString("  No data\n")
		return
	}
	for _, line := range lines {
		b.WriteString("  " + line + "\n")
	}
}

func heatmapLines(r *engine.Report) []string {
	lines := make([]string, 0, len(r.Heatmap.Words))
	for i, word := range r.Heatmap.Words {
		cells := make([]string, len(r.Heatmap.Counts[i]))
		for j, n := range r.Heatmap.Counts[i] {
			cells[j] = fmt.Sprintf("%d", n)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", word, strings.Join(cells, " ")))
	}
	return lines
}
