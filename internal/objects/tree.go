package objects

import (
	"encoding/json"
	"sort"

	"github.com/NahomAnteneh/my-svn/core"
)

// TreeEntryType is the tagged-union discriminant of a tree entry (§9
// "Dynamic dispatch / variant types").
type TreeEntryType string

const (
	TreeEntryFile   TreeEntryType = "File"
	TreeEntryFolder TreeEntryType = "Folder"
)

// TreeEntry is one line of a directory listing, keyed by SHA-1 of its
// serialized parent tree (§3 "Tree").
type TreeEntry struct {
	DataType  TreeEntryType `json:"data_type"`
	Name      string        `json:"name"`
	Hash      string        `json:"hash"`
	Timestamp *int64        `json:"timestamp,omitempty"`
}

// SerializeTree canonicalizes entries by sorting on Name before marshaling,
// so identical directory contents always hash identically (§9 "Tree-entry
// ordering" re-architecture).
func SerializeTree(entries []TreeEntry) ([]byte, error) {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	data, err := json.Marshal(sorted)
	if err != nil {
		return nil, core.ObjectError("failed to serialize tree", err)
	}
	return data, nil
}

// DeserializeTree parses a tree object's JSON array.
func DeserializeTree(data []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, core.ObjectError("failed to parse tree object", err)
	}
	return entries, nil
}

// CreateTreeFromEntries canonicalizes, serializes, and writes a tree object,
// returning its hash.
func CreateTreeFromEntries(repoRoot string, entries []TreeEntry) (string, error) {
	data, err := SerializeTree(entries)
	if err != nil {
		return "", err
	}
	return WriteObject(repoRoot, data)
}

// GetTree reads and parses a tree object by hash.
func GetTree(repoRoot, hash string) ([]TreeEntry, error) {
	data, err := ReadObject(repoRoot, hash)
	if err != nil {
		return nil, err
	}
	return DeserializeTree(data)
}

// treeNode is the in-memory prefix trie used while building a tree from the
// index (§4.J step 1), grounded on the original's TreeNode/travel_commit_tree
// post-order hashing.
type treeNode struct {
	name      string
	isFile    bool
	hash      string
	timestamp int64
	children  map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, children: make(map[string]*treeNode)}
}

// BuildTreeFromPaths builds the prefix trie from a flat path→{hash,timestamp}
// map (e.g. the index's entries), then post-order hashes every
// internal node into a tree object, returning the root tree's hash.
func BuildTreeFromPaths(repoRoot string, files map[string]struct {
	Hash      string
	Timestamp int64
}) (string, error) {
	root := newTreeNode("")
	for path, info := range files {
		insertPath(root, splitPath(path), info.Hash, info.Timestamp)
	}
	return hashTreeNode(repoRoot, root)
}

func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			if i > start {
				parts = append(parts, path[start:i])
			}
			start = i + 1
		}
	}
	if start < len(path) {
		parts = append(parts, path[start:])
	}
	return parts
}

func insertPath(node *treeNode, parts []string, hash string, timestamp int64) {
	if len(parts) == 0 {
		return
	}
	name := parts[0]
	child, ok := node.children[name]
	if !ok {
		child = newTreeNode(name)
		node.children[name] = child
	}
	if len(parts) == 1 {
		child.isFile = true
		child.hash = hash
		child.timestamp = timestamp
		return
	}
	insertPath(child, parts[1:], hash, timestamp)
}

// hashTreeNode recursively hashes children first (post-order), writes the
// resulting tree object for node, and returns its hash.
func hashTreeNode(repoRoot string, node *treeNode) (string, error) {
	entries := make([]TreeEntry, 0, len(node.children))
	for _, child := range node.children {
		if child.isFile {
			ts := child.timestamp
			entries = append(entries, TreeEntry{
				DataType:  TreeEntryFile,
				Name:      child.name,
				Hash:      child.hash,
				Timestamp: &ts,
			})
			continue
		}
		childHash, err := hashTreeNode(repoRoot, child)
		if err != nil {
			return "", err
		}
		entries = append(entries, TreeEntry{
			DataType: TreeEntryFolder,
			Name:     child.name,
			Hash:     childHash,
		})
	}
	return CreateTreeFromEntries(repoRoot, entries)
}
