package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NahomAnteneh/my-svn/core"
)

// AddAll implements add's Mode 1 ("add ."): scan the working tree, queue
// every non-ignored file whose timestamp differs from the index (or is
// absent from it), stage in parallel, then drop index entries for files no
// longer present on disk (§4.H Mode 1).
func AddAll(repo *core.Repository, idx *Index) error {
	tree, err := core.ScanWorkingTree(repo.Root)
	if err != nil {
		return err
	}
	rules := core.LoadIgnoreRules(repo.Root)

	var queue []queuedFile
	for path, fp := range tree.Entries {
		if core.IsIgnored(path, rules) {
			continue
		}
		existing, ok := idx.Entries[path]
		if !ok || existing.Timestamp != fp.Timestamp {
			queue = append(queue, queuedFile{Path: path, Timestamp: fp.Timestamp})
		}
	}

	if err := stageFilesParallel(repo, idx, queue); err != nil {
		return err
	}

	for path := range idx.Entries {
		if _, ok := tree.Entries[path]; !ok {
			idx.Remove(path)
		}
	}
	return nil
}

// AddPathspecs implements add's Mode 2: for each argument, resolve it
// against the working tree and queue any changed files, handling the
// not-on-disk removal cases exactly as §4.H specifies.
func AddPathspecs(repo *core.Repository, idx *Index, args []string) error {
	var queue []queuedFile
	rules := core.LoadIgnoreRules(repo.Root)

	for _, arg := range args {
		absPath, err := filepath.Abs(arg)
		if err != nil {
			return core.FSError("failed to resolve path '"+arg+"'", err)
		}

		if !core.FileExists(absPath) {
			relGuess := trimTrailingSlash(core.RelativeToRoot(repo.Root, absPath))
			if _, ok := idx.Entries[relGuess]; ok {
				idx.Remove(relGuess)
				continue
			}
			if idx.RemoveDirPrefix(relGuess) {
				continue
			}
			fmt.Printf("pathspec '%s' did not match any files\n", arg)
			return nil
		}

		if !core.IsPathWithin(repo.Root, absPath) {
			fmt.Printf("Error: '%s' is outside repository at '%s'\n", arg, repo.Root)
			return nil
		}

		relPath := core.RelativeToRoot(repo.Root, absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return core.FSError("failed to stat '"+arg+"'", err)
		}

		if info.IsDir() {
			err := filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if d.Name() == core.RepoDirName {
						return filepath.SkipDir
					}
					return nil
				}
				fileRel := core.RelativeToRoot(repo.Root, path)
				if core.IsIgnored(fileRel, rules) {
					return nil
				}
				fInfo, err := d.Info()
				if err != nil {
					return err
				}
				ts := fInfo.ModTime().Unix()
				existing, ok := idx.Entries[fileRel]
				if !ok || existing.Timestamp != ts {
					queue = append(queue, queuedFile{Path: fileRel, Timestamp: ts})
				}
				return nil
			})
			if err != nil {
				return core.FSError("failed to walk directory '"+arg+"'", err)
			}
			continue
		}

		if core.IsIgnored(relPath, rules) {
			continue
		}

		ts := info.ModTime().Unix()
		existing, ok := idx.Entries[relPath]
		if !ok || existing.Timestamp != ts {
			queue = append(queue, queuedFile{Path: relPath, Timestamp: ts})
		}
	}

	return stageFilesParallel(repo, idx, queue)
}

func trimTrailingSlash(p string) string {
	p = strings.TrimSuffix(p, "/")
	p = strings.TrimSuffix(p, "\\")
	return core.ToSlash(p)
}
