// Package web serves a localhost-only single-user UI; it intentionally has no
// auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"togglzoho/config"
	"togglzoho/converter"
	"togglzoho/importer"
	"togglzoho/output"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	cfg config.Config
	mux *http.ServeMux
}

type indexPageView struct {
	Title       string
	SplitPolicy string
}

func NewServer(cfg config.Config) http.Handler {
	server := &Server{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", server.handleIndex)
	mux.HandleFunc("POST /api/convert", server.handleAPIConvert)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	view := indexPageView{
		Title:       "togglzoho",
		SplitPolicy: s.cfg.Split.Policy,
	}
	if err := renderTemplate(w, "index.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPIConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("parse multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		http.Error(w, fmt.Sprintf("create temp upload: %v", err), http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		http.Error(w, fmt.Sprintf("save upload: %v", err), http.StatusInternalServerError)
		return
	}
	if err := tmp.Close(); err != nil {
		http.Error(w, fmt.Sprintf("close upload temp file: %v", err), http.StatusInternalServerError)
		return
	}

	format, err := importer.InferFormat(header.Filename, strings.TrimSpace(r.FormValue("format")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reader, err := importer.ReaderForFormat(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	headers, records, err := reader.Read(tmpPath)
	if err != nil {
		http.Error(w, fmt.Sprintf("read upload: %v", err), http.StatusBadRequest)
		return
	}

	result, err := converter.Convert(headers, records, s.cfg)
	if err != nil {
		http.Error(w, err.Error(), conversionErrorStatus(err))
		return
	}

	if r.URL.Query().Get("download") == "1" {
		name := downloadFilename(header.Filename)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

		writer := &output.CSVWriter{IncludeRateColumns: s.cfg.Output.IncludeRateColumns}
		if err := writer.WriteTo(w, result.Entries); err != nil {
			http.Error(w, fmt.Sprintf("write csv: %v", err), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, buildConvertResponse(result, s.cfg.Output.IncludeRateColumns))
}

func conversionErrorStatus(err error) int {
	var schemaErr *converter.SchemaError
	var dataErr *converter.DataError
	if errors.As(err, &schemaErr) || errors.As(err, &dataErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func downloadFilename(uploadName string) string {
	base := filepath.Base(strings.TrimSpace(uploadName))
	if base == "" || base == "." {
		return "zoho_import.csv"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "import"
	}
	return "zoho_" + stem + ".csv"
}

func tempUploadPattern(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "upload-*"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		return stem + "-*"
	}
	return stem + "-*" + ext
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
