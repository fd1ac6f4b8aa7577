package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"togglzoho/config"
	"togglzoho/converter"
	"togglzoho/importer"
	"togglzoho/output"
	"togglzoho/storage"
	"togglzoho/zoho"

	"github.com/spf13/cobra"
)

var (
	convertInput       string
	convertOutput      string
	convertInputFormat string
	convertFormat      string
	convertMode        string
	convertDBPath      string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Toggl export into a Zoho People import file",
	Long: `Read a Toggl Track detailed export, validate every row, split entries that
cross midnight into one fragment per calendar day, and write the Zoho People
time log import file.

Use "-" as input to read CSV from stdin and "-" as output to write CSV to
stdout. When --output is omitted, the file is written next to the input with
the configured prefix (default: zoho_<input>.csv).

Modes:
- rows: one output row per converted entry fragment
- daily: per-day aggregates (entry count, billable/non-billable time, first/last clock)`,
	Example: `
  # Convert with auto-named output
  togglzoho convert -i toggl_export.csv

  # Convert to an explicit path
  togglzoho convert -i toggl_export.csv -o april.csv

  # Force Excel output independent of extension
  togglzoho convert -i toggl_export.csv -o april.out --format excel

  # Pipe CSV through the converter
  cat toggl_export.csv | togglzoho convert -i - -o -

  # Daily summary instead of row output
  togglzoho convert -i toggl_export.csv --mode daily -o daily.csv

  # Record the run in a local SQLite history
  togglzoho convert -i toggl_export.csv --db ./togglzoho.db

  # Convert with custom config file
  togglzoho --configFile ./custom-togglzoho.yaml convert -i toggl_export.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		headers, records, err := readInput(convertInput, convertInputFormat)
		if err != nil {
			return err
		}

		result, err := converter.Convert(headers, records, *cfg)
		if err != nil {
			return err
		}

		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}

		outputPath := resolveOutputPath(convertInput, convertOutput, convertFormat, cfg.Output.Prefix)
		format := convertFormat
		if strings.TrimSpace(format) == "" {
			format = detectOutputFormat(outputPath)
		}

		if err := writeOutput(outputPath, format, convertMode, result.Entries, cfg.Output.IncludeRateColumns); err != nil {
			return err
		}

		if strings.TrimSpace(convertDBPath) != "" {
			store, err := storage.OpenSQLite(convertDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.RecordRun(convertInput, result.RowsRead, result.RowsConverted, result.Entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "History recorded. Run: %s, New entries: %d\n", run.ID, run.EntriesWritten)
		}

		fmt.Fprintf(os.Stderr, "Conversion completed. Rows read: %d, Entries written: %d, Entries split: %d, Warnings: %d, File: %s\n",
			result.RowsRead,
			len(result.Entries),
			result.RowsSplit,
			len(result.Warnings),
			outputPath,
		)

		return nil
	},
}

func readInput(path, format string) ([]string, []importer.Record, error) {
	if path == "-" {
		reader := &importer.CSVReader{}
		return reader.ReadFrom(os.Stdin)
	}

	inputFormat, err := importer.InferFormat(path, format)
	if err != nil {
		return nil, nil, err
	}
	reader, err := importer.ReaderForFormat(inputFormat)
	if err != nil {
		return nil, nil, err
	}
	return reader.Read(path)
}

func writeOutput(path, format, mode string, entries []zoho.Entry, includeRateColumns bool) error {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "rows":
		if path == "-" {
			writer := &output.CSVWriter{IncludeRateColumns: includeRateColumns}
			return writer.WriteTo(os.Stdout, entries)
		}
		writer, err := output.WriterForFormat(format, includeRateColumns)
		if err != nil {
			return err
		}
		return writer.Write(path, entries)
	case "daily":
		if path == "-" {
			return fmt.Errorf("daily mode does not support stdout output")
		}
		summaries := output.BuildDailySummaries(entries)
		return output.WriteDailySummaries(path, format, summaries)
	default:
		return fmt.Errorf("unsupported convert mode: %s (supported: rows, daily)", mode)
	}
}

// resolveOutputPath picks the output file. Explicit --output always wins;
// stdin input without --output falls back to stdout.
func resolveOutputPath(inputPath, outputFlag, format, prefix string) string {
	if strings.TrimSpace(outputFlag) != "" {
		return outputFlag
	}
	if inputPath == "-" {
		return "-"
	}

	ext := ".csv"
	if normalized := strings.TrimSpace(strings.ToLower(format)); normalized == "excel" || normalized == "xlsx" {
		ext = ".xlsx"
	}

	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), prefix+stem+ext)
}

func detectOutputFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input file path, or - for stdin (CSV)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path, or - for stdout (CSV); default: <prefix><input>.csv next to the input")
	convertCmd.Flags().StringVar(&convertInputFormat, "input-format", "", "Input format: csv|excel (optional, inferred from input extension)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	convertCmd.Flags().StringVar(&convertMode, "mode", "rows", "Output mode: rows|daily")
	convertCmd.Flags().StringVar(&convertDBPath, "db", "", "Optional path to a SQLite history database")

	_ = convertCmd.MarkFlagRequired("input")
}
