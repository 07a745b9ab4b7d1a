package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wordstats/internal/engine"
	"wordstats/internal/runner"
)

const BaseDirName = "WordStats"

// Settings is the persisted analyzer configuration. New installs get the
// engine defaults and the standard debounce window.
type Settings struct {
	Options        engine.Options `json:"options"`
	DebounceMillis int            `json:"debounce_ms"`
}

func DefaultSettings() Settings {
	return Settings{
		Options:        engine.DefaultOptions(),
		DebounceMillis: int(runner.DefaultWindow.Milliseconds()),
	}
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "exports"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if writeErr := SaveSettings(base, DefaultSettings()); writeErr != nil {
			return "", writeErr
		}
	}

	return base, nil
}

func SettingsPath(base string) string {
	return filepath.Join(base, "configs", "settings.json")
}

func LoadSettings(base string) (Settings, error) {
	raw, err := os.ReadFile(SettingsPath(base))
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	settings := DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return settings, nil
}

func SaveSettings(base string, settings Settings) error {
	raw, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(SettingsPath(base), raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
