package utils

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/Ondrekk12/pyright/internal/config"
)

// ExtractSuiteName derives a suite name from a file path.
// It takes the base filename and removes any recognized suite extension.
func ExtractSuiteName(path string) string {
	name := filepath.Base(path)
	return config.TrimSuiteExt(name)
}

// CollectSuiteFiles expands path into the suite files it names. A file path
// is returned as is; a directory is scanned one level deep for files with a
// recognized suite extension, sorted by name.
func CollectSuiteFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !config.HasSuiteExt(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
