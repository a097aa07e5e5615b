package objects

import (
	"encoding/json"

	"github.com/NahomAnteneh/my-svn/core"
)

// Commit is the JSON-serialized commit object (§3 "Commit"). Parent is
// explicit null for the root commit; readers tolerate a legacy [""] form
// too (§9 "Parent of the first commit").
type Commit struct {
	CommitID  string   `json:"-"`
	Tree      string   `json:"tree"`
	Parent    []string `json:"parent"`
	Author    string   `json:"author,omitempty"`
	Message   string   `json:"message"`
	Timestamp int64    `json:"timestamp"`
}

// NormalizedParents strips the legacy [""] root-commit encoding down to nil,
// so callers never have to special-case it.
func (c *Commit) NormalizedParents() []string {
	if len(c.Parent) == 1 && c.Parent[0] == "" {
		return nil
	}
	return c.Parent
}

// CreateCommit serializes, hashes, and writes a commit object, then returns
// its hash (§4.J step 3).
func CreateCommit(repoRoot string, tree string, parents []string, author, message string, timestamp int64) (string, error) {
	c := Commit{
		Tree:      tree,
		Parent:    parents,
		Author:    author,
		Message:   message,
		Timestamp: timestamp,
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", core.ObjectError("failed to serialize commit", err)
	}
	hash, err := WriteObject(repoRoot, data)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// GetCommit reads and parses a commit object by hash.
func GetCommit(repoRoot, hash string) (*Commit, error) {
	data, err := ReadObject(repoRoot, hash)
	if err != nil {
		return nil, err
	}
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, core.ObjectError("failed to parse commit object "+hash, err)
	}
	c.CommitID = hash
	return &c, nil
}
