package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"wordstats/internal/engine"
	"wordstats/internal/present"
)

const (
	ToolName = "WordStats"
	Version  = "1.0"

	previewRunes = 1000
)

// Format selects an export serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatText     Format = "txt"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatSQLite   Format = "sqlite"
)

// ParseFormat maps a user-supplied name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "txt", "text":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "sqlite", "db":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Write serializes the report to w in the requested format. FormatSQLite is
// file-based and handled by the db package, not here.
func Write(w io.Writer, format Format, report *engine.Report, text string, now time.Time) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report, text, now)
	case FormatCSV:
		return writeCSV(w, report)
	case FormatText:
		return writeText(w, report, text, now)
	case FormatHTML:
		return writeHTML(w, report, text, now)
	case FormatMarkdown:
		return writeMarkdown(w, report, text, now)
	}
	return fmt.Errorf("format %q is not stream-exportable", format)
}

type metadata struct {
	ExportDate string `json:"export_date"`
	Tool       string `json:"tool"`
	Version    string `json:"version"`
}

type envelope struct {
	Metadata       metadata       `json:"metadata"`
	Statistics     *engine.Report `json:"statistics"`
	TextPreview    string         `json:"text_preview"`
	FullTextLength int            `json:"full_text_length"`
}

func writeJSON(w io.Writer, report *engine.Report, text string, now time.Time) error {
	env := envelope{
		Metadata: metadata{
			ExportDate: now.Format(time.RFC3339),
			Tool:       ToolName,
			Version:    Version,
		},
		Statistics:     report,
		TextPreview:    preview(text, previewRunes),
		FullTextLength: utf8.RuneCountInString(text),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

func writeCSV(w io.Writer, report *engine.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Category", "Metric", "Value"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range flatten(report) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// flatten turns the report into Category/Metric/Value triples. Scalar counts
// carry an empty metric; list and struct sections get one row per member.
func flatten(report *engine.Report) [][]string {
	rows := [][]string{
		{"words", "", strconv.Itoa(report.Words)},
		{"characters", "", strconv.Itoa(report.Characters)},
		{"characters_no_spaces", "", strconv.Itoa(report.CharactersNoSpaces)},
		{"sentences", "", strconv.Itoa(report.Sentences)},
		{"paragraphs", "", strconv.Itoa(report.Paragraphs)},
		{"unique_words", "", strconv.Itoa(report.UniqueWords)},
		{"avg_word_length", "", strconv.FormatFloat(report.AvgWordLength, 'f', 2, 64)},
		{"reading_time_seconds", "", strconv.Itoa(report.ReadingTimeSeconds)},
	}
	for _, e := range report.TopWords {
		rows = append(rows, []string{"top_words", e.Word, strconv.Itoa(e.Count)})
	}
	for _, word := range report.LongestWords {
		rows = append(rows, []string{"longest_words", word, strconv.Itoa(utf8.RuneCountInString(word))})
	}
	s := report.Readability
	rows = append(rows,
		[]string{"readability", "flesch_reading_ease", strconv.FormatFloat(s.FleschReadingEase, 'f', 2, 64)},
		[]string{"readability", "flesch_kincaid_grade", strconv.FormatFloat(s.FleschKincaidGrade, 'f', 2, 64)},
		[]string{"readability", "gunning_fog", strconv.FormatFloat(s.GunningFog, 'f', 2, 64)},
		[]string{"readability", "coleman_liau", strconv.FormatFloat(s.ColemanLiau, 'f', 2, 64)},
		[]string{"readability", "smog", strconv.FormatFloat(s.SMOG, 'f', 2, 64)},
		[]string{"readability", "automated_readability_index", strconv.FormatFloat(s.AutomatedReadability, 'f', 2, 64)},
		[]string{"readability", "reading_level", s.Level},
		[]string{"readability", "target_audience", s.Audience},
	)
	for _, k := range report.Keywords {
		value := fmt.Sprintf("%d (%.2f%%, %s)", k.Count, k.Density, k.Status)
		rows = append(rows, []string{"keywords", k.Keyword, value})
	}
	return rows
}

func writeText(w io.Writer, report *engine.Report, text string, now time.Time) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString(ToolName + " - STATISTICS EXPORT\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Export Date: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Text Length: %d characters\n\n", utf8.RuneCountInString(text))
	b.WriteString(present.Render(report))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdown(w io.Writer, report *engine.Report, text string, now time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Analysis Report\n\n", ToolName)
	fmt.Fprintf(&b, "*Generated: %s*\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Key Statistics\n\n")
	for _, row := range present.Rows(report) {
		fmt.Fprintf(&b, "- **%s**: `%s`\n", row.Label, row.Value)
	}

	writeMarkdownList(&b, "Top Words", present.TopWordLines(report))
	writeMarkdownList(&b, "Longest Words", present.LongestWordLines(report))
	writeMarkdownList(&b, "Readability", present.ReadabilityLines(report))
	if len(report.Keywords) > 0 {
		writeMarkdownList(&b, "Keyword Density", present.KeywordLines(report))
	}

	b.WriteString("\n## Text Preview\n\n```\n")
	b.WriteString(preview(text, 500))
	b.WriteString("\n```\n\n")
	fmt.Fprintf(&b, "*--- Report generated by %s v%s ---*\n", ToolName, Version)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownList(b *strings.Builder, title string, lines []string) {
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
