// Package data exposes the four input datasets over HTTP: read and replace
// as JSON, row-level editing, plus CSV/JSON file upload.
package data

import (
	"encoding/json"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/vicharak-in/tlinker/core/logger"
	"github.com/vicharak-in/tlinker/core/table"
	"github.com/vicharak-in/tlinker/internal/dataset"
)

// NewHandler returns an HTTP handler serving GET and POST /api/data/<type>.
// GET returns the dataset rows as a JSON array; POST replaces the dataset
// wholesale with the posted array.
func NewHandler(store *dataset.Store, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, err := dataset.ParseKind(path.Base(r.URL.Path))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid data type")
			return
		}
		switch r.Method {
		case http.MethodGet:
			rows := []table.Row{}
			if t, ok := store.Table(kind); ok {
				rows = append(rows, t.Rows...)
			}
			writeJSON(w, rows)
		case http.MethodPost:
			t, err := table.ReadJSON(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			if err := store.Replace(kind, t); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Infof("replaced %s dataset (%d rows)", kind, t.Len())
			writeJSON(w, map[string]any{"success": true})
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})
}

// NewAddRowHandler returns an HTTP handler serving POST /api/add_row/<type>.
// The dataset grows by one row, cloned from its last row or built from a
// template when the dataset is empty.
func NewAddRowHandler(store *dataset.Store, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		kind, err := dataset.ParseKind(path.Base(r.URL.Path))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid data type")
			return
		}
		store.AppendRow(kind)
		log.Infof("added row to %s dataset", kind)
		writeJSON(w, map[string]any{"success": true, "message": "New row added to " + string(kind)})
	})
}

// NewRemoveRowHandler returns an HTTP handler serving POST /api/remove_row/<type>
// with body {"index": n}.
func NewRemoveRowHandler(store *dataset.Store, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		kind, err := dataset.ParseKind(path.Base(r.URL.Path))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid data type")
			return
		}
		var body struct {
			Index *int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Index == nil {
			writeError(w, http.StatusBadRequest, "No row index provided")
			return
		}
		if err := store.RemoveRow(kind, *body.Index); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid row index")
			return
		}
		log.Infof("removed row %d from %s dataset", *body.Index, kind)
		writeJSON(w, map[string]any{"success": true, "message": "Row removed from " + string(kind)})
	})
}

// NewUploadHandler returns an HTTP handler serving POST /api/upload/<type>
// with a multipart "file" field holding a CSV or JSON dataset.
func NewUploadHandler(store *dataset.Store, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		kind, err := dataset.ParseKind(path.Base(r.URL.Path))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid data type")
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file provided")
			return
		}
		defer f.Close() //nolint:errcheck

		var t *table.Table
		switch strings.ToLower(filepath.Ext(hdr.Filename)) {
		case ".csv":
			t, err = table.ReadCSV(f)
		case ".json":
			t, err = table.ReadJSON(f)
		default:
			writeError(w, http.StatusBadRequest, "Invalid file type. Please upload CSV or JSON files.")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error loading file: "+err.Error())
			return
		}
		if err := store.Replace(kind, t); err != nil {
			writeError(w, http.StatusInternalServerError, "Error loading file: "+err.Error())
			return
		}
		log.Infof("uploaded %s dataset from %s (%d rows)", kind, hdr.Filename, t.Len())
		writeJSON(w, map[string]any{"success": true})
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
