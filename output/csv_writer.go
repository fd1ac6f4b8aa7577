package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"togglzoho/zoho"
)

type CSVWriter struct {
	IncludeRateColumns bool
}

func (w *CSVWriter) Write(path string, entries []zoho.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	return w.WriteTo(file, entries)
}

// WriteTo emits the Zoho CSV to any stream; used for stdout and downloads.
func (w *CSVWriter) WriteTo(dest io.Writer, entries []zoho.Entry) error {
	writer := csv.NewWriter(dest)

	if err := writer.Write(zoho.Columns(w.IncludeRateColumns)); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range entries {
		if err := writer.Write(entry.Values(w.IncludeRateColumns)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
