package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader parses a Toggl export file into its header row and data records.
type Reader interface {
	Read(path string) ([]string, []Record, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch NormalizeHeader(format) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// InferFormat returns the explicit format when given, otherwise derives it
// from the file extension.
func InferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return strings.TrimSpace(strings.ToLower(format)), nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
