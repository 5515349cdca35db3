package engine

import (
	"io/fs"
	"path/filepath"

	"copymedic/internal/config"
)

// EnumerateFiles walks the target root and returns the relative,
// slash-separated paths of every regular file a run will touch, in walk
// order. Excluded directories are pruned whole: nothing below them is
// visited. Any filesystem error aborts the enumeration.
func EnumerateFiles(cfg *config.Config) ([]string, error) {
	root := cfg.Target.Root
	self := executableInfo()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if matchesAny(cfg.Target.ExcludeDirs, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		// Symlinks, sockets and devices are not rewritable text files.
		if !d.Type().IsRegular() {
			return nil
		}
		if matchesAny(cfg.Target.ExcludeFiles, d.Name()) {
			return nil
		}
		if isSelf(path, self) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
