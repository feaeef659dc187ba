package cli

import (
	"fmt"

	"github.com/hatchworks/hatch/internal/branding"
	"github.com/hatchworks/hatch/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write wizard defaults stored at ~/.hatch/config.yaml.

Recognized keys: author, package_manager, editor, license. The author is
offered as the default answer at the author prompt; the others pre-select
the matching menu entry (values: npm/yarn/pnpm, vscode/windsurf/none,
mit/apache2/gpl3/none).`,
	Example: "  " + branding.CLIName() + " config set author \"Jane Doe\"\n" +
		"  " + branding.CLIName() + " config set package_manager pnpm",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		value := config.Get(args[0])
		if value == "" {
			return fmt.Errorf("config key %q is not set", args[0])
		}
		fmt.Println(value)
		return nil
	},
}
