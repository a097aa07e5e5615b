package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/objects"
)

// LogHandler walks first-parent history from HEAD, printing each commit.
func LogHandler(repo *core.Repository, args []string) error {
	current, err := repo.ReadHead()
	if err != nil {
		return err
	}

	for current != "" {
		commit, err := objects.GetCommit(repo.Root, current)
		if err != nil {
			return err
		}

		fmt.Printf("commit %s\n", current)
		parents := commit.NormalizedParents()
		if len(parents) > 1 {
			fmt.Printf("Merge:  %s\n", strings.Join(parents, " "))
		}
		fmt.Printf("Author: %s\n", commit.Author)
		fmt.Printf("Date:   %s\n", time.Unix(commit.Timestamp, 0).Format(time.RFC1123))
		fmt.Println()
		fmt.Printf("    %s\n", commit.Message)
		fmt.Println()

		current = ""
		if len(parents) > 0 {
			current = parents[0]
		}
	}

	return nil
}

func init() {
	logCmd := NewRepoCommand(
		"log",
		"Show commit logs",
		LogHandler,
	)
	rootCmd.AddCommand(logCmd)
}
