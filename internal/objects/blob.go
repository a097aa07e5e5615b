package objects

// GetBlob retrieves a blob's raw bytes by hash.
func GetBlob(repoRoot, hash string) ([]byte, error) {
	return ReadObject(repoRoot, hash)
}
