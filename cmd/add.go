package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/staging"
	"github.com/spf13/cobra"
)

// AddHandler handles 'add': "." syncs the whole working tree, any other
// pathspec stages just those paths (§4.H).
func AddHandler(repo *core.Repository, args []string) error {
	idx, err := staging.LoadIndex(repo)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "." {
		if err := staging.AddAll(repo, idx); err != nil {
			return err
		}
	} else {
		if err := staging.AddPathspecs(repo, idx, args); err != nil {
			return err
		}
	}

	return idx.Write()
}

func init() {
	addCmd := NewCommand(
		"add <path>...",
		"Add file contents to the index",
		AddHandler,
		1,
	)
	addCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("requires at least 1 argument")
		}
		return nil
	}
	rootCmd.AddCommand(addCmd)
}
