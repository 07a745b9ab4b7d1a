package export

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"wordstats/internal/engine"
	"wordstats/internal/present"
)

var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Tool}} - Statistics</title>
<style>
body { font-family: 'Consolas', monospace; background: #0a0a0a; color: #00ff00; margin: 40px; }
.container { max-width: 800px; margin: 0 auto; border: 1px solid #333; padding: 20px; background: #111; }
h1 { color: #00ff00; border-bottom: 2px solid #333; padding-bottom: 10px; }
.stat { margin: 15px 0; padding: 10px; background: #1a1a1a; border-left: 3px solid #00aa00; }
.highlight { color: #00ffff; font-weight: bold; }
.preview { background: #000; padding: 15px; border: 1px solid #333; margin: 20px 0; white-space: pre-wrap; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<h1>{{.Tool}} - Analysis Report</h1>
<p>Generated: {{.Date}}</p>

<h2>Key Statistics</h2>
{{range .Rows}}<div class="stat"><strong>{{.Label}}:</strong> <span class="highlight">{{.Value}}</span></div>
{{end}}
{{range .Sections}}<h2>{{.Title}}</h2>
<div class="stat"><ul>
{{range .Lines}}<li>{{.}}</li>
{{end}}</ul></div>
{{end}}
<h2>Text Preview</h2>
<div class="preview">{{.Preview}}</div>

<p><em>Report generated by {{.Tool}} v{{.Version}}</em></p>
</div>
</body>
</html>
`))

type htmlSection struct {
	Title string
	Lines []string
}

type htmlData struct {
	Tool     string
	Version  string
	Date     string
	Rows     []present.Row
	Sections []htmlSection
	Preview  string
}

func writeHTML(w io.Writer, report *engine.Report, text string, now time.Time) error {
	sections := []htmlSection{
		{"Top Words", present.TopWordLines(report)},
		{"Longest Words", present.LongestWordLines(report)},
		{"Readability", present.ReadabilityLines(report)},
	}
	if len(report.Keywords) > 0 {
		sections = append(sections, htmlSection{"Keyword Density", present.KeywordLines(report)})
	}
	data := htmlData{
		Tool:     ToolName,
		Version:  Version,
		Date:     now.Format("2006-01-02 15:04:05"),
		Rows:     present.Rows(report),
		Sections: sections,
		Preview:  preview(text, 500),
	}
	if err := htmlReport.Execute(w, data); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}
