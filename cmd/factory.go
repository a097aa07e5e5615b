package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/spf13/cobra"
)

// HandlerFunc is the signature every repository-scoped command handler
// implements.
type HandlerFunc func(repo *core.Repository, args []string) error

// NewCommand builds a cobra.Command that locates the enclosing repository
// before handing off to handler.
func NewCommand(use, short string, handler HandlerFunc, requiredArgs int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < requiredArgs {
				return fmt.Errorf("requires at least %d argument(s)", requiredArgs)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.FindRepository()
			if err != nil {
				return err
			}
			return handler(repo, args)
		},
	}
}

// NewRepoCommand is NewCommand with no minimum argument count, the common
// case for most subcommands.
func NewRepoCommand(use, short string, handler HandlerFunc) *cobra.Command {
	return NewCommand(use, short, handler, 0)
}

// NewInitCommand builds a command that must run outside any existing
// repository handle, i.e. init.
func NewInitCommand(use, short string, run func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
}
