package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
	"github.com/spf13/cobra"
)

var (
	branchDelete string
	branchRename string
	branchForce  bool
)

// BranchHandler lists, creates, deletes, or renames branches depending on
// which flags were passed (§3 "branch" supplemented feature).
func BranchHandler(repo *core.Repository, args []string) error {
	switch {
	case branchDelete != "":
		return deleteBranch(repo, branchDelete, branchForce)
	case branchRename != "":
		parts := strings.SplitN(branchRename, " ", 2)
		if len(parts) != 2 {
			return fmt.Errorf("rename requires 'oldname newname'")
		}
		return renameBranch(repo, parts[0], parts[1])
	case len(args) == 0:
		return listBranches(repo)
	default:
		return createBranch(repo, args[0])
	}
}

func listBranches(repo *core.Repository) error {
	entries, err := os.ReadDir(filepath.Join(repo.RefsDir, "heads"))
	if err != nil {
		return core.RefError("failed to read branch directory", err)
	}
	current, err := repo.GetCurrentBranch()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Name() == current {
			fmt.Printf("* %s\n", e.Name())
		} else {
			fmt.Printf("  %s\n", e.Name())
		}
	}
	return nil
}

func createBranch(repo *core.Repository, name string) error {
	if strings.ContainsAny(name, " /\\~^:?*[]") {
		return fmt.Errorf("invalid branch name: %s", name)
	}
	if repo.BranchExists(name) {
		return core.AlreadyExistsError(core.ErrCategoryRef, "branch '"+name+"'")
	}
	head, err := repo.ReadHead()
	if err != nil {
		return err
	}
	return repo.WriteRef(filepath.Join("refs", "heads", name), head)
}

func deleteBranch(repo *core.Repository, name string, force bool) error {
	if !repo.BranchExists(name) {
		return core.NotFoundError(core.ErrCategoryRef, "branch '"+name+"'")
	}
	current, err := repo.GetCurrentBranch()
	if err != nil {
		return err
	}
	if name == current {
		return fmt.Errorf("cannot delete the currently checked-out branch '%s'", name)
	}
	if !force {
		target, err := repo.ReadBranchHash(name)
		if err != nil {
			return err
		}
		head, err := repo.ReadHead()
		if err != nil {
			return err
		}
		merged, err := objects.IsAncestor(repo.Root, target, head)
		if err != nil {
			return err
		}
		if !merged {
			return fmt.Errorf("branch '%s' is not fully merged; use --force to delete anyway", name)
		}
	}
	return os.Remove(filepath.Join(repo.RefsDir, "heads", name))
}

func renameBranch(repo *core.Repository, oldName, newName string) error {
	if strings.ContainsAny(newName, " /\\~^:?*[]") {
		return fmt.Errorf("invalid branch name: %s", newName)
	}
	if !repo.BranchExists(oldName) {
		return core.NotFoundError(core.ErrCategoryRef, "branch '"+oldName+"'")
	}
	if repo.BranchExists(newName) {
		return core.AlreadyExistsError(core.ErrCategoryRef, "branch '"+newName+"'")
	}
	oldPath := filepath.Join(repo.RefsDir, "heads", oldName)
	newPath := filepath.Join(repo.RefsDir, "heads", newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		return core.RefError("failed to rename branch", err)
	}
	current, err := repo.GetCurrentBranch()
	if err != nil {
		return err
	}
	if current == oldName {
		return repo.SetCurrentBranch(newName)
	}
	return nil
}

func init() {
	branchCmd := NewRepoCommand(
		"branch [name]",
		"List, create, delete, or rename branches",
		BranchHandler,
	)
	branchCmd.Flags().StringVarP(&branchDelete, "delete", "d", "", "delete a branch")
	branchCmd.Flags().StringVarP(&branchRename, "rename", "m", "", "rename a branch: 'oldname newname'")
	branchCmd.Flags().BoolVarP(&branchForce, "force", "f", false, "force delete an unmerged branch")
	branchCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.AddCommand(branchCmd)
}
