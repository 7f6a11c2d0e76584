package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"svw.info/sudoku-tutor/internal/constraint"
	"svw.info/sudoku-tutor/internal/generator"
	"svw.info/sudoku-tutor/internal/infrastructure/storage"
	"svw.info/sudoku-tutor/internal/solver"
	"svw.info/sudoku-tutor/internal/stepsolver"
	"svw.info/sudoku-tutor/internal/usecase"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	bt := solver.NewBacktrackingSolver()
	uc := usecase.NewService(bt, stepsolver.New(bt), generator.NewUniqueGenerator(bt), constraint.NewChecker(), storage.NewFS(t.TempDir()))
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

const classicBody = `{"board":[
	[5,3,0,0,7,0,0,0,0],
	[6,0,0,1,9,5,0,0,0],
	[0,9,8,0,0,0,0,6,0],
	[8,0,0,0,6,0,0,0,3],
	[4,0,0,8,0,3,0,0,1],
	[7,0,0,0,2,0,0,0,6],
	[0,6,0,0,0,0,2,8,0],
	[0,0,0,4,1,9,0,0,5],
	[0,0,0,0,8,0,0,7,9]],"explain":true}`

func TestSolveEndpointExplains(t *testing.T) {
	mux := testMux(t)
	req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(classicBody))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Board      [][]int `json:"board"`
		Techniques []struct {
			Name string `json:"name"`
		} `json:"techniques"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(resp.Board) != 9 {
		t.Fatalf("board rows = %d", len(resp.Board))
	}
	for _, row := range resp.Board {
		for _, v := range row {
			if v == 0 {
				t.Fatalf("unsolved cell in response")
			}
		}
	}
	if len(resp.Techniques) == 0 {
		t.Fatalf("no techniques narrated")
	}
}

func TestSolveEndpointRejectsBadValues(t *testing.T) {
	mux := testMux(t)
	body := strings.Replace(classicBody, "[5,3,0", "[12,3,0", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	mux := testMux(t)
	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader(classicBody))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK     bool `json:"ok"`
		Solved bool `json:"solved"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !resp.OK || resp.Solved {
		t.Fatalf("resp = %+v, want valid and unsolved", resp)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	mux := testMux(t)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"difficulty":"easy","seed":7}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID    string  `json:"id"`
		Board [][]int `json:"board"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.ID == "" || len(resp.Board) != 9 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestListRequiresGet(t *testing.T) {
	mux := testMux(t)
	req := httptest.NewRequest(http.MethodPost, "/api/list", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
