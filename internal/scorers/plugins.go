package scorers

import (
	"os"
	"path/filepath"
	"sort"
)

// pluginFiles lists every ".so" file directly inside dir, sorted by name
// so LoadAll's observable registration order is deterministic.
func pluginFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".so" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
