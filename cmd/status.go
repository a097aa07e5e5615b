package cmd

import (
	"fmt"
	"sort"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/status"
	"github.com/fatih/color"
)

var statusShort bool

// StatusHandler prints the three-way status report (§4.I).
func StatusHandler(repo *core.Repository, args []string) error {
	report, err := status.Compute(repo)
	if err != nil {
		return err
	}
	branch, err := repo.GetCurrentBranch()
	if err != nil {
		return err
	}

	if statusShort {
		printShortStatus(report)
		return nil
	}
	printLongStatus(branch, report)
	return nil
}

func printLongStatus(branch string, r *status.Report) {
	fmt.Printf("On branch %s\n", branch)

	if len(r.NewFiles) > 0 || len(r.StagedModified) > 0 || len(r.StagedDeleted) > 0 {
		fmt.Println("Changes to be committed:")
		sort.Strings(r.NewFiles)
		for _, f := range r.NewFiles {
			color.Green("\tnew file:   %s", f)
		}
		sort.Strings(r.StagedModified)
		for _, f := range r.StagedModified {
			color.Green("\tmodified:   %s", f)
		}
		sort.Strings(r.StagedDeleted)
		for _, f := range r.StagedDeleted {
			color.Green("\tdeleted:    %s", f)
		}
		fmt.Println()
	}

	if len(r.ModifiedNotStaged) > 0 || len(r.DeletedNotStaged) > 0 {
		fmt.Println("Changes not staged for commit:")
		sort.Strings(r.ModifiedNotStaged)
		for _, f := range r.ModifiedNotStaged {
			color.Red("\tmodified:   %s", f)
		}
		sort.Strings(r.DeletedNotStaged)
		for _, f := range r.DeletedNotStaged {
			color.Red("\tdeleted:    %s", f)
		}
		fmt.Println()
	}

	if len(r.Untracked) > 0 {
		fmt.Println("Untracked files:")
		sort.Strings(r.Untracked)
		for _, f := range r.Untracked {
			color.Red("\t%s", f)
		}
		fmt.Println()
	}

	if r.IsClean() {
		fmt.Println("nothing to commit, working tree clean")
	}
}

func printShortStatus(r *status.Report) {
	codes := make(map[string]string)
	for _, f := range r.StagedDeleted {
		codes[f] = "D "
	}
	for _, f := range r.NewFiles {
		codes[f] = "A "
	}
	for _, f := range r.StagedModified {
		codes[f] = "M "
	}
	for _, f := range r.DeletedNotStaged {
		if c, ok := codes[f]; ok {
			codes[f] = c[:1] + "D"
		} else {
			codes[f] = " D"
		}
	}
	for _, f := range r.ModifiedNotStaged {
		if c, ok := codes[f]; ok {
			codes[f] = c[:1] + "M"
		} else {
			codes[f] = " M"
		}
	}
	for _, f := range r.Untracked {
		codes[f] = "??"
	}

	files := make([]string, 0, len(codes))
	for f := range codes {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Printf("%s %s\n", codes[f], f)
	}
}

func init() {
	statusCmd := NewRepoCommand(
		"status",
		"Show the working tree status",
		StatusHandler,
	)
	statusCmd.Flags().BoolVarP(&statusShort, "short", "s", false, "give the output in the short format")
	rootCmd.AddCommand(statusCmd)
}
