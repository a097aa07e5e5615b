package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/my-svn/core"
	"github.com/spf13/cobra"
)

var configGlobal bool

// ConfigHandler gets or sets a configuration key. Two args (key, value) sets
// it; one arg (key) prints its current value, checking local config before
// falling back to global (§6 file formats, "no configuration file beyond
// .svnignore" except for this user.name/user.email store).
func ConfigHandler(repo *core.Repository, args []string) error {
	switch len(args) {
	case 1:
		value, err := core.GetConfigValue(repo.Root, args[0])
		if err != nil {
			return err
		}
		if value == "" {
			return fmt.Errorf("key '%s' is not set", args[0])
		}
		fmt.Println(value)
		return nil
	case 2:
		if configGlobal {
			return core.SetGlobalConfigValue(args[0], args[1])
		}
		return core.SetConfigValue(repo.Root, args[0], args[1])
	default:
		return fmt.Errorf("usage: config <key> [<value>]")
	}
}

func init() {
	configCmd := NewCommand(
		"config <key> [value]",
		"Get or set a configuration value",
		ConfigHandler,
		1,
	)
	configCmd.Args = cobra.RangeArgs(1, 2)
	configCmd.Flags().BoolVar(&configGlobal, "global", false, "operate on the global config file")
	rootCmd.AddCommand(configCmd)
}
