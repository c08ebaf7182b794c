// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path"
)

// ListFiles returns the names of the direct entries of dir that are not
// directories, in directory listing order (sorted by file name). Symbolic
// links are followed to decide whether they point at a directory.
func ListFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(fsys, path.Join(dir, entry.Name()))
			if err == nil && info.IsDir() {
				continue
			}
		}
		files = append(files, entry.Name())
	}

	return files, nil
}
