/*
Copyright © 2025 nate@costello.dev

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"togglzoho/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "togglzoho",
	Short: "Convert Toggl Track time exports into Zoho People import files.",
	Long: `
**********************************************
*             TOGGL -> ZOHO                  *
**********************************************

This CLI reads Toggl Track detailed exports (CSV, Excel), validates every row,
splits entries that cross midnight into per-day fragments, and writes files
ready for the Zoho People time log import.

Supported input formats:
- CSV: .csv
- Excel: .xlsx, .xlsm, .xls
`,
	Example: `
  # Create configuration file
  togglzoho config create

  # Convert a Toggl export (writes zoho_toggl_export.csv next to the input)
  togglzoho convert -i toggl_export.csv

  # Convert to an explicit Excel output
  togglzoho convert -i toggl_export.csv -o april.xlsx --format excel

  # Convert from stdin to stdout
  cat toggl_export.csv | togglzoho convert -i - -o -

  # Convert and keep a history record in SQLite
  togglzoho convert -i toggl_export.csv --db ./togglzoho.db

  # Show recorded conversion runs
  togglzoho history --db ./togglzoho.db

  # Start the local upload-and-convert web UI
  togglzoho serve --port 8080
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.togglzoho.yaml, then ./.togglzoho.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Name() == "convert"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".togglzoho" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".togglzoho")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: togglzoho config create")
	}
}
