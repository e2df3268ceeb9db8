package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath is usable before the config is parsed, to locate the .env file.
func GetRuntimePath() string {
	path := os.Getenv("LEX_RUNTIME_PATH")
	if path == "" {
		path = ".lex"
	}
	return resolveRuntimePath(path)
}

func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
