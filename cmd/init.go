package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/NahomAnteneh/my-svn/core"
)

func init() {
	initCmd := NewInitCommand(
		"init [directory]",
		"Initialize a new, empty repository",
		func(args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return core.FSError("failed to resolve directory", err)
			}
			repo, err := core.InitRepository(absDir)
			if err != nil {
				return err
			}
			fmt.Printf("Initialized empty repository in %s\n", repo.VecDir)
			return nil
		},
	)
	rootCmd.AddCommand(initCmd)
}
