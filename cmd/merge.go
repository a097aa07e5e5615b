package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/merge"
	"github.com/spf13/cobra"
)

// MergeHandler merges the named branch into the current branch (§4.L).
func MergeHandler(repo *core.Repository, args []string) error {
	commitHash, err := merge.Merge(repo, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Merge made by the 'recursive' strategy: %s\n", commitHash[:7])
	return nil
}

func init() {
	mergeCmd := NewCommand(
		"merge <branch>",
		"Merge another branch into the current branch",
		MergeHandler,
		1,
	)
	mergeCmd.Args = cobra.ExactArgs(1)
	rootCmd.AddCommand(mergeCmd)
}
