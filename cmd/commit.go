package cmd

import (
	"fmt"
	"time"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/NahomAnteneh/my-svn/internal/staging"
	"github.com/spf13/cobra"
)

var commitMessage string

// CommitHandler records the index as a new commit on the current branch
// (§4.J). It refuses an empty message, but otherwise always builds a tree
// and writes a commit: commits are never conditioned on equality with HEAD.
func CommitHandler(repo *core.Repository, args []string) error {
	if commitMessage == "" {
		return fmt.Errorf("aborting commit due to empty message")
	}

	name, err := core.GetConfigValue(repo.Root, "user.name")
	if err != nil || name == "" {
		name = "unknown"
	}
	email, err := core.GetConfigValue(repo.Root, "user.email")
	if err != nil || email == "" {
		email = "unknown"
	}
	author := fmt.Sprintf("%s <%s>", name, email)

	idx, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}

	branch, err := repo.GetCurrentBranch()
	if err != nil {
		return err
	}
	parent, err := repo.ReadBranchHash(branch)
	if err != nil {
		return err
	}

	files := make(map[string]struct {
		Hash      string
		Timestamp int64
	}, len(idx.Entries))
	for p, fi := range idx.Entries {
		files[p] = struct {
			Hash      string
			Timestamp int64
		}{Hash: fi.Hash, Timestamp: fi.Timestamp}
	}
	treeHash, err := objects.BuildTreeFromPaths(repo.Root, files)
	if err != nil {
		return err
	}

	var parents []string
	if parent != "" {
		parents = []string{parent}
	}

	commitHash, err := objects.CreateCommit(repo.Root, treeHash, parents, author, commitMessage, time.Now().Unix())
	if err != nil {
		return err
	}

	if err := repo.WriteRef("refs/heads/"+branch, commitHash); err != nil {
		return err
	}

	fmt.Printf("[%s %s] %s\n", branch, commitHash[:7], commitMessage)
	return nil
}

func init() {
	commitCmd := NewRepoCommand(
		"commit",
		"Record staged changes as a new commit",
		CommitHandler,
	)
	commitCmd.Args = cobra.NoArgs
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "commit message")
	rootCmd.AddCommand(commitCmd)
}
