package core

import (
	"os"
	"path/filepath"
	"strings"
)

// FileFingerprint is the scanner's view of a file: a placeholder hash and a
// modification timestamp. The hash is intentionally left blank — the
// scanner sits on the hot path of status/add/checkout and must not read file
// contents; hashing is deferred to whoever actually needs it (§4.D).
type FileFingerprint struct {
	Hash      string
	Timestamp int64
}

// WorkingTree maps repo-relative (forward-slash) paths to fingerprints.
type WorkingTree struct {
	Entries map[string]FileFingerprint
}

// ScanWorkingTree recursively enumerates regular files under root, skipping
// RepoDirName. Symlinks are not followed. Directories are not recorded.
func ScanWorkingTree(root string) (*WorkingTree, error) {
	wt := &WorkingTree{Entries: make(map[string]FileFingerprint)}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = ToSlash(rel)

		if d.IsDir() {
			if d.Name() == RepoDirName {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(rel, RepoDirName+"/") || rel == RepoDirName {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		wt.Entries[rel] = FileFingerprint{
			Hash:      "",
			Timestamp: info.ModTime().Unix(),
		}
		return nil
	})
	if err != nil {
		return nil, FSError("failed to scan working tree", err)
	}
	return wt, nil
}
