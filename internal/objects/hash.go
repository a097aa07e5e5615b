// Package objects implements the content-addressed object store: blobs,
// trees, and commits (§4.B, §4.C, §4.G, §4.J).
package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"

	"github.com/NahomAnteneh/my-svn/core"
)

const hashChunkSize = 4096

// HashFile streams a file in fixed-size chunks and returns its 40-hex-digit
// lowercase SHA-1 (§4.B) without buffering the whole file in memory.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", core.FSError("failed to open file for hashing", err)
	}
	defer f.Close()

	h := sha1.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", core.FSError("failed to read file for hashing", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes returns the 40-hex-digit lowercase SHA-1 of buf, used for tree
// and commit JSON payloads.
func HashBytes(buf []byte) string {
	h := sha1.Sum(buf)
	return hex.EncodeToString(h[:])
}
