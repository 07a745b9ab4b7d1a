package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"wordstats/internal/engine"
)

var exportStamp = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleReport(t *testing.T, text string) *engine.Report {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.Keywords = []string{"cat"}
	return engine.New().Analyze(text, opts)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"json":     FormatJSON,
		".md":      FormatMarkdown,
		"Markdown": FormatMarkdown,
		"TXT":      FormatText,
		"htm":      FormatHTML,
		"db":       FormatSQLite,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONEnvelope(t *testing.T) {
	text := "The cat sat on the mat. The cat ran."
	report := sampleReport(t, text)
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, report, text, exportStamp); err != nil {
		t.Fatalf("Write json: %v", err)
	}

	var env struct {
		Metadata struct {
			ExportDate string `json:"export_date"`
			Tool       string `json:"tool"`
			Version    string `json:"version"`
		} `json:"metadata"`
		Statistics     engine.Report `json:"statistics"`
		TextPreview    string        `json:"text_preview"`
		FullTextLength int           `json:"full_text_length"`
	}
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Metadata.Tool != ToolName || env.Metadata.Version != Version {
		t.Fatalf("metadata = %+v", env.Metadata)
	}
	if env.Metadata.ExportDate != "2025-03-14T09:30:00Z" {
		t.Fatalf("export date = %q", env.Metadata.ExportDate)
	}
	if env.Statistics.Words != report.Words {
		t.Fatalf("statistics words = %d, want %d", env.Statistics.Words, report.Words)
	}
	if env.TextPreview != text {
		t.Fatalf("short text should not be truncated: %q", env.TextPreview)
	}
	if env.FullTextLength != len([]rune(text)) {
		t.Fatalf("full_text_length = %d", env.FullTextLength)
	}
}

func TestJSONPreviewTruncation(t *testing.T) {
	text := strings.Repeat("é", 1200)
	report := sampleReport(t, text)
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, report, text, exportStamp); err != nil {
		t.Fatalf("Write json: %v", err)
	}
	var env struct {
		TextPreview    string `json:"text_preview"`
		FullTextLength int    `json:"full_text_length"`
	}
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if got := len([]rune(env.TextPreview)); got != 1003 {
		t.Fatalf("preview rune length = %d, want 1000 + ellipsis", got)
	}
	if env.FullTextLength != 1200 {
		t.Fatalf("full_text_length = %d, want 1200", env.FullTextLength)
	}
}

func TestCSVRows(t *testing.T) {
	text := "the cat sat on the mat. the cat ran."
	report := sampleReport(t, text)
	var buf bytes.Buffer
	if err := Write(&buf, FormatCSV, report, text, exportStamp); err != nil {
		t.Fatalf("Write csv: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if got := records[0]; got[0] != "Category" || got[1] != "Metric" || got[2] != "Value" {
		t.Fatalf("header = %v", got)
	}
	found := map[string]bool{}
	for _, rec := range records[1:] {
		if len(rec) != 3 {
			t.Fatalf("row %v has %d fields", rec, len(rec))
		}
		found[rec[0]] = true
		if rec[0] == "words" && rec[2] != "9" {
			t.Fatalf("words row = %v", rec)
		}
		if rec[0] == "top_words" && rec[1] == "the" && rec[2] != "3" {
			t.Fatalf("top_words/the row = %v", rec)
		}
	}
	for _, category := range []string{"words", "avg_word_length", "top_words", "longest_words", "readability", "keywords"} {
		if !found[category] {
			t.Fatalf("missing category %q in csv output", category)
		}
	}
}

func TestTextExport(t *testing.T) {
	text := "The cat sat on the mat."
	report := sampleReport(t, text)
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, report, text, exportStamp); err != nil {
		t.Fatalf("Write txt: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"STATISTICS EXPORT", "Export Date: 2025-03-14 09:30:00", "Text Length: 23 characters", "TOP WORDS", "READABILITY"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text export missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLEscapesPreview(t *testing.T) {
	text := "beware <script>alert(1)</script> tags"
	report := sampleReport(t, text)
	var buf bytes.Buffer
	if err := Write(&buf, FormatHTML, report, text, exportStamp); err != nil {
		t.Fatalf("Write html: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>alert") {
		t.Fatal("preview was not escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("escaped preview missing:\n%s", out)
	}
	if !strings.Contains(out, "<h2>Top Words</h2>") {
		t.Fatalf("section heading missing:\n%s", out)
	}
}

func TestMarkdownExport(t *testing.T) {
	text := "The cat sat on the mat. The cat ran."
	report := sampleReport(t, text)
	var buf bytes.Buffer
	if err := Write(&buf, FormatMarkdown, report, text, exportStamp); err != nil {
		t.Fatalf("Write markdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"# WordStats - Analysis Report", "### Top Words", "- the: 3", "## Text Preview", "```"} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown export missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRejectsSQLite(t *testing.T) {
	report := sampleReport(t, "cat")
	var buf bytes.Buffer
	if err := Write(&buf, FormatSQLite, report, "cat", exportStamp); err == nil {
		t.Fatal("expected error for file-based format")
	}
}
