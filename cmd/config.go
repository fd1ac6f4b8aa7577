package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage togglzoho configuration file values.",
	Long: `Create, edit, and display the togglzoho configuration file.

The configuration stores conversion behavior:
- columns.required / columns.required_values
- split.policy (warn | reject for entries spanning more than two days)
- output.prefix / output.include_rate_columns`,
	Example: `
  # Create default config in $HOME/.togglzoho.yaml
  togglzoho config create

  # Show active config and source file
  togglzoho config show

  # Open active config in editor (creates example if missing)
  togglzoho config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
