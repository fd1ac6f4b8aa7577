package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"togglzoho/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  togglzoho config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, showing defaults.")
		}

		fmt.Println("Configuration:")
		fmt.Printf("columns.required: %s\n", strings.Join(cfg.Columns.Required, ", "))
		fmt.Printf("columns.required_values: %s\n", strings.Join(cfg.Columns.RequiredValues, ", "))
		fmt.Printf("split.policy: %s\n", cfg.Split.Policy)
		fmt.Printf("output.prefix: %s\n", cfg.Output.Prefix)
		fmt.Printf("output.include_rate_columns: %t\n", cfg.Output.IncludeRateColumns)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
