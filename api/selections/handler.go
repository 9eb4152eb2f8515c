// Package selections exposes the pending course selections over HTTP.
package selections

import (
	"encoding/json"
	"net/http"

	"github.com/vicharak-in/tlinker/core/logger"
	"github.com/vicharak-in/tlinker/core/model"
	"github.com/vicharak-in/tlinker/internal/dataset"
)

type postBody struct {
	Action     string `json:"action"`
	StudentID  int    `json:"student_id"`
	CourseCode string `json:"course_code"`
	Section    string `json:"section"`
	FacultyID  int    `json:"faculty_id"`
}

// NewHandler returns an HTTP handler serving /api/selections. GET lists the
// pending selections; POST with action "add" appends one and action "clear"
// drops them all.
func NewHandler(store *dataset.Store, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, store.Selections())
		case http.MethodPost:
			var body postBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			switch body.Action {
			case "add":
				store.AddSelection(model.Selection{
					StudentID:  body.StudentID,
					CourseCode: body.CourseCode,
					Section:    body.Section,
					FacultyID:  body.FacultyID,
				})
				log.Infof("added selection %s for student %d", body.CourseCode, body.StudentID)
			case "clear":
				store.ClearSelections()
				log.Infof("cleared selections")
			}
			writeJSON(w, map[string]any{"success": true, "selections": store.Selections()})
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
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
