// ABOUTME: Standard filesystem paths for pi-vlist configuration
// ABOUTME: Resolves ~/.pi-vlist/ for global and .pi-vlist/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const dirName = ".pi-vlist"

// GlobalDir returns the user-global config directory (~/.pi-vlist/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFiles returns the global candidates in preference order.
func GlobalConfigFiles() []string {
	return configFiles(GlobalDir())
}

// ProjectConfigFiles returns the project candidates in preference order.
func ProjectConfigFiles(projectRoot string) []string {
	return configFiles(ProjectDir(projectRoot))
}

// HistoryFile returns the file that persists filter patterns.
func HistoryFile() string {
	return filepath.Join(GlobalDir(), "filter_history")
}

// ThemesDir returns the directory searched for named theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

func configFiles(dir string) []string {
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.json"),
	}
}
