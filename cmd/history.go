package cmd

import (
	"fmt"

	"togglzoho/storage"

	"github.com/spf13/cobra"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded conversion runs from the SQLite history",
	Long: `List conversion runs recorded with "convert --db".

Each line shows the run timestamp, the source file, row counts, and how many
entries were newly persisted (duplicates across runs are stored once).`,
	Example: `
  # Show all recorded runs
  togglzoho history --db ./togglzoho.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns()
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No conversion runs recorded.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("%s  %s  rows read: %d, converted: %d, new entries: %d  (%s)\n",
				run.CreatedAt,
				run.SourceFile,
				run.RowsRead,
				run.RowsConverted,
				run.EntriesWritten,
				run.ID,
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDBPath, "db", "./togglzoho.db", "Path to local SQLite history database")
}
