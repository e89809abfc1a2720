package config

import (
	"encoding/json"
	"fmt"
	"os"

	"calix/internal/paths"
)

// Settings represents the structure of $CALIX_HOME/settings.json
type Settings struct {
	DBPath          string `json:"db_path,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	DefaultTemplate string `json:"default_template,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
}

// GetSettingsPath returns the settings file location
func GetSettingsPath() string {
	return paths.GetSettingsPath()
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	return paths.ExpandPath(path)
}

// LoadSettings loads settings from $CALIX_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from the given path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// ResolveDBPath applies precedence: flag > CALIX_DB_PATH > settings > $CALIX_HOME/calix.db
func (s *Settings) ResolveDBPath(flagValue string) string {
	if flagValue != "" {
		return ExpandPath(flagValue)
	}
	if env := os.Getenv("CALIX_DB_PATH"); env != "" {
		return ExpandPath(env)
	}
	if s != nil && s.DBPath != "" {
		return s.DBPath
	}
	return paths.GetDBPath()
}
