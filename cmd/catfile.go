package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/diff"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/spf13/cobra"
)

// CatFileHandler is a read-only diagnostic: it loads an object by hash and
// prints its type and content, sniffing the type from shape (a tree is a
// JSON array, a commit a JSON object with a "tree" field, anything else a
// blob) since objects here carry no type header.
func CatFileHandler(repo *core.Repository, args []string) error {
	hash := args[0]
	content, err := objects.ReadObject(repo.Root, hash)
	if err != nil {
		return err
	}

	if entries, err := objects.DeserializeTree(content); err == nil {
		for _, e := range entries {
			fmt.Printf("%s %s %s\n", e.DataType, e.Hash, e.Name)
		}
		return nil
	}

	var probe struct {
		Tree string `json:"tree"`
	}
	if json.Unmarshal(content, &probe) == nil && probe.Tree != "" {
		commit, err := objects.GetCommit(repo.Root, hash)
		if err != nil {
			return err
		}
		fmt.Printf("tree %s\n", commit.Tree)
		for _, p := range commit.NormalizedParents() {
			fmt.Printf("parent %s\n", p)
		}
		fmt.Printf("author %s\n", commit.Author)
		fmt.Println()
		fmt.Println(commit.Message)
		return nil
	}

	if diff.IsBinary(content) {
		fmt.Printf("<binary object, %d bytes>\n", len(content))
		return nil
	}
	fmt.Print(string(content))
	return nil
}

func init() {
	catFileCmd := NewCommand(
		"cat-file <hash>",
		"Print the content of a repository object",
		CatFileHandler,
		1,
	)
	catFileCmd.Args = cobra.ExactArgs(1)
	rootCmd.AddCommand(catFileCmd)
}
