package db

import (
	"database/sql"
	"fmt"
	"unicode/utf8"

	"wordstats/internal/engine"
)

// PersistReport writes a full analysis report to the SQLite file at dbPath.
// Existing rows are replaced, so each file holds exactly one report.
func PersistReport(dbPath string, report *engine.Report) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"statistics", "top_words", "longest_words", "keywords", "readability", "heatmap"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stats := []struct {
		metric string
		value  float64
	}{
		{"words", float64(report.Words)},
		{"characters", float64(report.Characters)},
		{"characters_no_spaces", float64(report.CharactersNoSpaces)},
		{"sentences", float64(report.Sentences)},
		{"paragraphs", float64(report.Paragraphs)},
		{"unique_words", float64(report.UniqueWords)},
		{"avg_word_length", report.AvgWordLength},
		{"reading_time_seconds", float64(report.ReadingTimeSeconds)},
	}
	for _, s := range stats {
		if _, err := tx.Exec(`INSERT INTO statistics(metric, value) VALUES(?,?)`, s.metric, s.value); err != nil {
			return fmt.Errorf("insert statistic %s: %w", s.metric, err)
		}
	}

	for i, e := range report.TopWords {
		if _, err := tx.Exec(`INSERT INTO top_words(rank, word, count) VALUES(?,?,?)`, i+1, e.Word, e.Count); err != nil {
			return fmt.Errorf("insert top word: %w", err)
		}
	}
	for i, word := range report.LongestWords {
		if _, err := tx.Exec(`INSERT INTO longest_words(rank, word, length) VALUES(?,?,?)`, i+1, word, utf8.RuneCountInString(word)); err != nil {
			return fmt.Errorf("insert longest word: %w", err)
		}
	}
	for _, k := range report.Keywords {
		if _, err := tx.Exec(`INSERT INTO keywords(keyword, count, density, status) VALUES(?,?,?,?)`, k.Keyword, k.Count, k.Density, string(k.Status)); err != nil {
			return fmt.Errorf("insert keyword: %w", err)
		}
	}

	r := report.Readability
	scores := []struct {
		metric string
		value  float64
		label  string
	}{
		{"flesch_reading_ease", r.FleschReadingEase, ""},
		{"flesch_kincaid_grade", r.FleschKincaidGrade, ""},
		{"gunning_fog", r.GunningFog, ""},
		{"coleman_liau", r.ColemanLiau, ""},
		{"smog", r.SMOG, ""},
		{"automated_readability_index", r.AutomatedReadability, ""},
		{"syllables", float64(r.Syllables), ""},
		{"complex_words", float64(r.ComplexWords), ""},
		{"reading_level", 0, r.Level},
		{"target_audience", 0, r.Audience},
	}
	for _, s := range scores {
		if _, err := tx.Exec(`INSERT INTO readability(metric, value, label) VALUES(?,?,?)`, s.metric, s.value, s.label); err != nil {
			return fmt.Errorf("insert readability %s: %w", s.metric, err)
		}
	}

	for i, word := range report.Heatmap.Words {
		for j, count := range report.Heatmap.Counts[i] {
			chunk := report.Heatmap.Chunks[j]
			if _, err := tx.Exec(
				`INSERT INTO heatmap(word, chunk, chunk_start, chunk_end, count) VALUES(?,?,?,?,?)`,
				word, j, chunk.Start, chunk.End, count,
			); err != nil {
				return fmt.Errorf("insert heatmap cell: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
