package staging

import (
	"path/filepath"
	"runtime"
	"sync"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
)

// queuedFile is one file awaiting parallel hashing during add.
type queuedFile struct {
	Path      string // repo-relative, forward-slash
	Timestamp int64
}

// stageFilesParallel implements the §4.H parallel hashing contract: the
// queue is partitioned into N ≈ hardware-parallelism chunks, each worker
// hashes its files and inserts {path → FileInfo} into the index under a
// single mutex, then copies the file into the object store unguarded
// (content-addressed writes are benign under races).
func stageFilesParallel(repo *core.Repository, idx *Index, queue []queuedFile) error {
	if len(queue) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(queue) + workers - 1) / workers

	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for start := 0; start < len(queue); start += chunkSize {
		end := start + chunkSize
		if end > len(queue) {
			end = len(queue)
		}
		chunk := queue[start:end]

		wg.Add(1)
		go func(chunk []queuedFile) {
			defer wg.Done()
			for _, qf := range chunk {
				absPath := filepath.Join(repo.Root, core.FromSlash(qf.Path))
				hash, err := objects.HashFile(absPath)
				if err != nil {
					errCh <- err
					return
				}

				mu.Lock()
				idx.Set(qf.Path, objects.FileInfo{Hash: hash, Timestamp: qf.Timestamp})
				mu.Unlock()

				if !objects.ObjectExists(repo.Root, hash) {
					if err := objects.CopyFileToObjects(repo.Root, absPath, hash); err != nil {
						errCh <- err
						return
					}
				}
			}
		}(chunk)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}
