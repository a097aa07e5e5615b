package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/NahomAnteneh/my-svn/internal/checkout"
	"github.com/spf13/cobra"
)

// CheckoutHandler switches the working tree to the named branch (§4.K).
func CheckoutHandler(repo *core.Repository, args []string) error {
	if err := checkout.Checkout(repo, args[0]); err != nil {
		return err
	}
	fmt.Printf("Switched to branch '%s'\n", args[0])
	return nil
}

func init() {
	checkoutCmd := NewCommand(
		"checkout <branch>",
		"Switch branches",
		CheckoutHandler,
		1,
	)
	checkoutCmd.Args = cobra.ExactArgs(1)
	rootCmd.AddCommand(checkoutCmd)
}
