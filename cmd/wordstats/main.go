package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"wordstats/internal/db"
	"wordstats/internal/engine"
	"wordstats/internal/export"
	"wordstats/internal/history"
	"wordstats/internal/ingest"
	"wordstats/internal/keyword"
	"wordstats/internal/present"
	"wordstats/internal/runner"
	"wordstats/internal/token"
	"wordstats/internal/workspace"
)

const watchPollInterval = 200 * time.Millisecond

func main() {
	var (
		filePath    = flag.String("file", "", "input file (.txt, .md, .pdf, .docx); reads stdin when empty")
		formatName  = flag.String("format", "report", "output: report, json, csv, txt, html, markdown, sqlite")
		outPath     = flag.String("out", "", "output file; stdout when empty (sqlite needs a path or -export)")
		toExports   = flag.Bool("export", false, "write output into the workspace exports directory")
		watch       = flag.Bool("watch", false, "re-analyze whenever -file changes")
		backendName = flag.String("backend", "fast", "analysis backend: fast or reference")
		baseDir     = flag.String("workspace", "", "workspace directory (default ~/WordStats)")

		topN       = flag.Int("top", 0, "top frequent words to report")
		longestN   = flag.Int("longest", 0, "longest words to report")
		heatmapTop = flag.Int("heatmap-top", 0, "heatmap vocabulary size")
		chunks     = flag.Int("chunks", 0, "heatmap chunk count")
		keywords   = flag.String("keywords", "", "comma-separated keywords for density analysis")
		policyName = flag.String("policy", "", "word boundary policy: alphanumeric_underscore or alphabetic_only")
		debounceMS = flag.Int("debounce", 0, "watch debounce window in milliseconds")
	)
	flag.Parse()

	base, err := ensureWorkspace(*baseDir)
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}
	settings, err := workspace.LoadSettings(base)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	opts := settings.Options
	window := time.Duration(settings.DebounceMillis) * time.Millisecond
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top":
			opts.TopN = *topN
		case "longest":
			opts.LongestN = *longestN
		case "heatmap-top":
			opts.HeatmapTopN = *heatmapTop
		case "chunks":
			opts.HeatmapChunks = *chunks
		case "keywords":
			opts.Keywords = keyword.ParseList(*keywords)
		case "policy":
			policy, parseErr := token.ParsePolicy(*policyName)
			if parseErr != nil {
				log.Fatalf("parse policy: %v", parseErr)
			}
			opts.Policy = policy
		case "debounce":
			window = time.Duration(*debounceMS) * time.Millisecond
		}
	})

	eng, err := newEngine(*backendName)
	if err != nil {
		log.Fatalf("select backend: %v", err)
	}
	trace("backend %s, workspace %s", eng.Backend(), base)

	if *watch {
		if *filePath == "" {
			log.Fatal("-watch requires -file")
		}
		watchFile(eng, opts, window, *filePath)
		return
	}

	text, err := readInput(*filePath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	report := eng.Analyze(text, opts)
	trace("analyzed %d words in %d sentences", report.Words, report.Sentences)

	if err := emit(*formatName, report, text, *outPath, base, *toExports); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func ensureWorkspace(baseDir string) (string, error) {
	if baseDir != "" {
		return workspace.EnsureAt(baseDir)
	}
	return workspace.EnsureDefault()
}

func newEngine(backend string) (*engine.Engine, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "fast":
		return engine.New(), nil
	case "reference":
		return engine.NewReference(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

func readInput(path string) (string, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	parsed, err := ingest.ParseFile(path)
	if err != nil {
		return "", err
	}
	return parsed.Text, nil
}

func emit(formatName string, report *engine.Report, text, outPath, base string, toExports bool) error {
	if strings.EqualFold(strings.TrimSpace(formatName), "report") {
		return writeOut(outPath, []byte(present.Render(report)))
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	now := time.Now()

	if format == export.FormatSQLite {
		path := outPath
		if toExports {
			path = workspace.ExportPath(base, "db", now)
		}
		if path == "" {
			return fmt.Errorf("sqlite export needs -out or -export")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := db.PersistReport(path, report); err != nil {
			return err
		}
		fmt.Printf("Report exported to: %s\n", path)
		return nil
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, report, text, now); err != nil {
		return err
	}
	if toExports {
		path, err := workspace.WriteExport(base, extensionFor(format), now, buf.Bytes())
		if err != nil {
			return err
		}
		fmt.Printf("Report exported to: %s\n", path)
		return nil
	}
	return writeOut(outPath, buf.Bytes())
}

func extensionFor(format export.Format) string {
	if format == export.FormatMarkdown {
		return "md"
	}
	return string(format)
}

func writeOut(path string, raw []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// watchFile polls the file's mtime and pushes every change through the
// debounced runner, printing a fresh report for the latest contents.
func watchFile(eng *engine.Engine, opts engine.Options, window time.Duration, path string) {
	ring := history.NewRing(history.DefaultCapacity)
	run := runner.New(eng, window, opts, ring, func(_ string, report *engine.Report) {
		fmt.Println(strings.Repeat("-", 60))
		fmt.Print(present.Render(report))
	})

	submit := func() {
		parsed, err := ingest.ParseFile(path)
		if err != nil {
			log.Printf("re-read %s: %v", path, err)
			return
		}
		trace("submitting %d bytes", len(parsed.Text))
		run.Submit(parsed.Text)
	}

	submit()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}
	for {
		select {
		case <-stop:
			fmt.Println("\nstopped")
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				submit()
			}
		}
	}
}

func trace(format string, args ...any) {
	if os.Getenv("WORDSTATS_TRACE") == "1" {
		fmt.Printf("%s [TRACE] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	}
}
