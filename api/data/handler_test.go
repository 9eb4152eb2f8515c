package data

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vicharak-in/tlinker/core/logger"
	"github.com/vicharak-in/tlinker/internal/dataset"
)

func TestGetEmptyDataset(t *testing.T) {
	h := NewHandler(dataset.NewStore(), logger.NopLogger{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/data/students", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("body %q", rr.Body.String())
	}
}

func TestPostThenGet(t *testing.T) {
	store := dataset.NewStore()
	h := NewHandler(store, logger.NopLogger{})

	body := `[{"id":1,"name":"Lecture Hall A","capacity":100,"type":"Lecture Hall","availability":["Mon:1-16"]}]`
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/data/rooms", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("post status %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/data/rooms", nil))
	var rows []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "Lecture Hall A" {
		t.Fatalf("rows: %+v", rows)
	}
}

func TestInvalidDataType(t *testing.T) {
	h := NewHandler(dataset.NewStore(), logger.NopLogger{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/data/timetable", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid data type") {
		t.Fatalf("body %q", rr.Body.String())
	}
}

func TestAddRowClonesLast(t *testing.T) {
	store := dataset.NewStore()
	if err := dataset.Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewAddRowHandler(store, logger.NopLogger{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/add_row/students", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "New row added to students") {
		t.Fatalf("body %q", rr.Body.String())
	}

	tab, _ := store.Table(dataset.KindStudents)
	if tab.Len() != 6 {
		t.Fatalf("rows: %d", tab.Len())
	}
	last := tab.Rows[5]
	if last["name"] != "New Student" || last["id"] != 6 {
		t.Fatalf("cloned row: %+v", last)
	}
	if last["program"] != "Electronics" {
		t.Fatalf("program not carried over: %+v", last)
	}
}

func TestAddRowEmptyDatasetTemplate(t *testing.T) {
	store := dataset.NewStore()
	h := NewAddRowHandler(store, logger.NopLogger{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/add_row/courses", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	tab, _ := store.Table(dataset.KindCourses)
	if tab.Len() != 1 || tab.Rows[0]["code"] != "NEW101" {
		t.Fatalf("template row: %+v", tab.Rows)
	}
}

func TestRemoveRow(t *testing.T) {
	store := dataset.NewStore()
	if err := dataset.Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewRemoveRowHandler(store, logger.NopLogger{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/remove_row/rooms", strings.NewReader(`{"index":0}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	tab, _ := store.Table(dataset.KindRooms)
	if tab.Len() != 7 || tab.Rows[0]["name"] != "Lecture Hall B" {
		t.Fatalf("rows after remove: %d, first %+v", tab.Len(), tab.Rows[0])
	}
}

func TestRemoveRowBadIndex(t *testing.T) {
	store := dataset.NewStore()
	if err := dataset.Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewRemoveRowHandler(store, logger.NopLogger{})

	for _, body := range []string{`{"index":99}`, `{"index":-1}`, `{}`} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/remove_row/rooms", strings.NewReader(body)))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status %d", body, rr.Code)
		}
	}
}

func TestUploadCSV(t *testing.T) {
	store := dataset.NewStore()
	h := NewUploadHandler(store, logger.NopLogger{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "students.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	csv := "id,name,program,semester,chosen_courses,credits_target\n" +
		`1,John Doe,Computer Science,3,"[""CS301""]",18` + "\n"
	if _, err := fw.Write([]byte(csv)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/upload/students", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}

	in, err := store.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(in.Students) != 1 || in.Students[0].ChosenCourses[0] != "CS301" {
		t.Fatalf("students: %+v", in.Students)
	}
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	h := NewUploadHandler(dataset.NewStore(), logger.NopLogger{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "students.xls")
	_, _ = fw.Write([]byte("junk"))
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/upload/students", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
}
