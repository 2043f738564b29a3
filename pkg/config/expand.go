package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand substitutes environment variables in s and expands a leading ~.
// References to unset variables are replaced with the empty string, so
// "${HOME}/.x" and "$HOME/.x" always produce the same result.
func Expand(s string) string {
	return ExpandHome(os.Expand(s, os.Getenv))
}

// ExpandHome replaces a leading "~" or "~/" with the current user's home
// directory. Other paths, including "~user", are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
