package objects

import (
	"os"
	"path/filepath"

	"github.com/NahomAnteneh/my-svn/core"
)

// ObjectPath returns the flat path of an object under objects/<hash>, per
// §3. Unlike a sharded objects/<hash[:2]>/<hash[2:]> layout, the on-disk
// format here is a single flat directory.
func ObjectPath(repoRoot, hash string) string {
	return filepath.Join(repoRoot, core.RepoDirName, "objects", hash)
}

// WriteObject writes raw bytes to objects/<hash(content)> if not already
// present, returning the hash (§4.C). The existence check is a best-effort
// optimization, not a correctness requirement — concurrent writers of the
// same hash write identical bytes.
func WriteObject(repoRoot string, content []byte) (string, error) {
	hash := HashBytes(content)
	path := ObjectPath(repoRoot, hash)
	if core.FileExists(path) {
		return hash, nil
	}
	if err := core.WriteFileAtomic(path, content, 0644); err != nil {
		return "", core.ObjectError("failed to write object "+hash, err)
	}
	return hash, nil
}

// ReadObject returns the raw bytes stored at objects/<hash>.
func ReadObject(repoRoot, hash string) ([]byte, error) {
	path := ObjectPath(repoRoot, hash)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, core.ObjectError("failed to read object "+hash, err)
	}
	return content, nil
}

// ObjectExists reports whether objects/<hash> exists.
func ObjectExists(repoRoot, hash string) bool {
	return core.FileExists(ObjectPath(repoRoot, hash))
}

// CopyFileToObjects copies the file at srcPath into objects/<hash> without
// rehashing if the hash is already known, matching the existence-check-then-
// copy shape of the parallel staging contract (§4.H).
func CopyFileToObjects(repoRoot, srcPath, hash string) error {
	dest := ObjectPath(repoRoot, hash)
	if core.FileExists(dest) {
		return nil
	}
	if err := core.CopyFile(srcPath, dest); err != nil {
		return core.ObjectError("failed to copy file into object store", err)
	}
	return nil
}

// CopyFileToWorkingTree materializes object <hash> at dest, creating parent
// directories as needed. Used by checkout and merge to write resolved files
// back into the working tree.
func CopyFileToWorkingTree(repoRoot, hash, dest string) error {
	src := ObjectPath(repoRoot, hash)
	if err := core.CopyFile(src, dest); err != nil {
		return core.ObjectError("failed to materialize "+hash+" to working tree", err)
	}
	return nil
}
