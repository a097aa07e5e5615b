package objects

import "path/filepath"

// ResolveActualHash answers "what hash does this on-disk file actually have
// right now" without always re-hashing: if the working-tree timestamp
// matches one of the known (timestamp, hash) pairs — typically the commit's
// and the index's fingerprints for this path — that hash is trusted;
// otherwise the file is re-hashed. Centralizing this (§9 "Working-tree scan
// timestamp-only fingerprint") keeps checkout and merge from open-coding
// the same reconciliation; status re-hashes on a timestamp mismatch itself.
func ResolveActualHash(repoRoot, relPath string, workingTimestamp int64, known ...FileInfo) (string, error) {
	for _, k := range known {
		if k.Timestamp == workingTimestamp {
			return k.Hash, nil
		}
	}
	return HashFile(filepath.Join(repoRoot, filepath.FromSlash(relPath)))
}
