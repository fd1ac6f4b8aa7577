package output

import (
	"fmt"
	"strings"

	"togglzoho/zoho"
)

type Writer interface {
	Write(path string, entries []zoho.Entry) error
}

func WriterForFormat(format string, includeRateColumns bool) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{IncludeRateColumns: includeRateColumns}, nil
	case "excel", "xlsx":
		return &ExcelWriter{IncludeRateColumns: includeRateColumns}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
