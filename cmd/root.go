package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/checkout"
	"github.com/NahomAnteneh/my-svn/internal/merge"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "my-svn",
	Short: "A minimal, distributed version control system",
	Long:  `my-svn is a minimal distributed version control system: content-addressed object store, commit DAG, staging index, checkout, and three-way merge.`,
}

// Execute runs the root command. Expected user-facing failures (repository
// not found, bad arguments, merge conflict, uncommitted-changes abort) print
// their message and exit 0; internal failures (IOError, CorruptObject,
// LogicError) exit 1 (§6/§7).
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	if isInternal(err) {
		os.Exit(1)
	}
}

func isInternal(err error) bool {
	var structured *core.StructuredError
	if errors.As(err, &structured) {
		return !structured.Lookup
	}
	var conflict *merge.ErrConflict
	if errors.As(err, &conflict) {
		return false
	}
	var uncommitted *checkout.ErrUncommittedChanges
	if errors.As(err, &uncommitted) {
		return false
	}
	return false
}
