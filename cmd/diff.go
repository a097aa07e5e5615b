package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/diff"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// DiffHandler compares two trees line by line (§4.M). With no argument it
// compares HEAD to its first parent; with a branch argument it compares the
// current branch's tip to that branch's tip.
func DiffHandler(repo *core.Repository, args []string) error {
	head, err := repo.ReadHead()
	if err != nil {
		return err
	}

	var firstHash, secondHash string
	var firstTree, secondTree map[string]objects.FileInfo

	if len(args) == 0 {
		if head == "" {
			fmt.Println("No differences.")
			return nil
		}
		commit, err := objects.GetCommit(repo.Root, head)
		if err != nil {
			return err
		}
		parents := commit.NormalizedParents()
		firstHash = head
		firstTree, err = objects.ReadCommitTree(repo.Root, head)
		if err != nil {
			return err
		}
		if len(parents) == 0 {
			secondHash = ""
			secondTree = map[string]objects.FileInfo{}
		} else {
			secondHash = parents[0]
			secondTree, err = objects.ReadCommitTree(repo.Root, parents[0])
			if err != nil {
				return err
			}
		}
	} else {
		current, err := repo.GetCurrentBranch()
		if err != nil {
			return err
		}
		firstHash, err = repo.ReadBranchHash(current)
		if err != nil {
			return err
		}
		secondHash, err = repo.ReadBranchHash(args[0])
		if err != nil {
			return err
		}
		firstTree, err = objects.ReadBranchTree(repo, current)
		if err != nil {
			return err
		}
		secondTree, err = objects.ReadBranchTree(repo, args[0])
		if err != nil {
			return err
		}
	}

	if firstHash == secondHash {
		fmt.Println("No differences.")
		return nil
	}

	paths := make(map[string]struct{}, len(firstTree)+len(secondTree))
	for p := range firstTree {
		paths[p] = struct{}{}
	}
	for p := range secondTree {
		paths[p] = struct{}{}
	}

	for path := range paths {
		a, inFirst := firstTree[path]
		b, inSecond := secondTree[path]

		switch {
		case inFirst && !inSecond:
			fmt.Printf("added: %s\n", path)
		case !inFirst && inSecond:
			fmt.Printf("deleted: %s\n", path)
		case a.Hash != b.Hash:
			fmt.Printf("modified: %s\n", path)
			printFileDiff(repo, b.Hash, a.Hash)
		}
	}

	return nil
}

func printFileDiff(repo *core.Repository, oldHash, newHash string) {
	oldContent, err := objects.GetBlob(repo.Root, oldHash)
	if err != nil {
		return
	}
	newContent, err := objects.GetBlob(repo.Root, newHash)
	if err != nil {
		return
	}

	if diff.IsBinary(oldContent) || diff.IsBinary(newContent) {
		fmt.Println(diff.ByteSummary(oldContent, newContent))
		return
	}

	for _, op := range diff.Lines(oldContent, newContent) {
		switch op.Kind {
		case diff.OpInsert:
			color.Green("+%s", op.Line)
		case diff.OpDelete:
			color.Red("-%s", op.Line)
		}
	}
}

func init() {
	diffCmd := NewRepoCommand(
		"diff [branch]",
		"Show changes between commits",
		DiffHandler,
	)
	diffCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.AddCommand(diffCmd)
}
