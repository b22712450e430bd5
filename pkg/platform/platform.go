// Package platform knows where the current OS keeps its fonts.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// FontDirs returns the font directories that exist on this machine,
// system directories first. Directories that are configured but absent
// are silently dropped; an empty result means no font storage could be
// found at all.
func FontDirs() []string {
	var candidates []string

	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, "Library/Fonts"))
		}
	default:
		// Linux and friends: fontconfig's usual haunts.
		candidates = []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates,
				filepath.Join(home, ".local/share/fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
	}

	var dirs []string
	for _, dir := range candidates {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
