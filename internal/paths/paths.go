package paths

import (
	"os"
	"path/filepath"
)

// GetCalixHome returns CALIX_HOME or ~/.calix default
func GetCalixHome() string {
	calixHome := os.Getenv("CALIX_HOME")
	if calixHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".calix"
		}
		return filepath.Join(homeDir, ".calix")
	}
	return ExpandPath(calixHome)
}

// GetDBPath returns $CALIX_HOME/calix.db
func GetDBPath() string {
	return filepath.Join(GetCalixHome(), "calix.db")
}

// GetSettingsPath returns $CALIX_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetCalixHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
