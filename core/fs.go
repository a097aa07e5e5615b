package core

import (
	"io"
	"os"
	"path/filepath"
)

// RepoDirName is the repository metadata directory, checked for by the
// locator (§4.A) and always excluded from the working-tree scan (§4.D).
const RepoDirName = ".my_svn"

// IgnoreFileName is the optional plain-text rule file read by the ignore
// filter (§4.E).
const IgnoreFileName = ".svnignore"

// FileExists reports whether path exists, regardless of type.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFileContent reads the full content of a file.
func ReadFileContent(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, FSError("failed to read file "+path, err)
	}
	return content, nil
}

// WriteFileAtomic writes data to path by writing to a temp file in the same
// directory then renaming over the destination, so readers never observe a
// partially-written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := EnsureDirExists(dir); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return FSError("failed to create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return FSError("failed to write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return FSError("failed to close temp file", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return FSError("failed to chmod temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return FSError("failed to rename temp file into place", err)
	}
	return nil
}

// EnsureDirExists creates a directory (and parents) if it does not exist.
func EnsureDirExists(path string) error {
	if FileExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return FSError("failed to create directory "+path, err)
	}
	return nil
}

// CopyFile copies src to dst verbatim, creating dst's parent directory if
// needed. Used for blob materialization on checkout/merge and for writing
// new objects into the store.
func CopyFile(src, dst string) error {
	if err := EnsureDirExists(filepath.Dir(dst)); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return FSError("failed to open source file "+src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return FSError("failed to create destination file "+dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return FSError("failed to copy file content", err)
	}
	return nil
}
