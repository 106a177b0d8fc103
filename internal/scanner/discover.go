package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverLetters resolves each path into letter files. Directories are walked
// recursively for files whose extension matches one of extensions
// (case-insensitive); hidden files and directories are skipped. Files named
// directly are always included. Paths that do not exist are skipped. The
// result is deduplicated by absolute path and sorted by name.
func DiscoverLetters(paths []string, extensions []string) ([]Letter, error) {
	var letters []Letter
	seen := make(map[string]bool)

	add := func(path, name string, size int64) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		letters = append(letters, Letter{Path: abs, Name: name, Size: size})
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		if !info.IsDir() {
			add(root, filepath.Base(root), info.Size())
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && isHidden(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !hasExtension(d.Name(), extensions) {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = d.Name()
			}
			add(path, filepath.ToSlash(rel), fi.Size())
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(letters, func(i, j int) bool {
		return strings.ToLower(letters[i].Name) < strings.ToLower(letters[j].Name)
	})

	return letters, nil
}

// isHidden reports whether a file or directory name is hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// hasExtension reports whether name ends in one of extensions.
func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
