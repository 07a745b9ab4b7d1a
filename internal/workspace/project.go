package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportPath returns a fresh timestamped file path under the workspace
// exports directory, e.g. exports/word_stats_20250314_093000.json.
func ExportPath(base, extension string, now time.Time) string {
	ext := strings.TrimPrefix(sanitizeName(extension), ".")
	name := fmt.Sprintf("word_stats_%s.%s", now.Format("20060102_150405"), ext)
	return filepath.Join(base, "exports", name)
}

// WriteExport writes raw bytes to a timestamped export file and returns its
// path.
func WriteExport(base, extension string, now time.Time, raw []byte) (string, error) {
	path := ExportPath(base, extension, now)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func sanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "txt"
	}
	return strings.ReplaceAll(base, "..", "")
}
