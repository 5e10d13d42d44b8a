package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions are matched case-sensitively against the end of the
// filename, so "clip.MP4" is not a video.
var videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv"}

// IsVideo reports whether name ends with one of the accepted extensions.
func IsVideo(name string) bool {
	for _, ext := range videoExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Discover lists inputDir (not recursively) and returns the names of the
// regular files that are videos, sorted. Directories are skipped even when
// their name looks like a video; symlinks count when they resolve to a
// regular file.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", inputDir, err)
	}

	var names []string
	for _, e := range entries {
		if !IsVideo(e.Name()) || !isRegular(inputDir, e) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func isRegular(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.Mode().IsRegular()
}
