package responses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/types"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var payload struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !payload.Success {
		t.Fatal("expected success=true")
	}
	if payload.Data["hello"] != "world" {
		t.Fatalf("unexpected payload: %v", payload.Data)
	}
}

func TestWriteSuccessStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccessStatus(rec, http.StatusCreated, map[string]string{"id": "1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestWritePaged(t *testing.T) {
	rec := httptest.NewRecorder()
	WritePaged(rec, []string{"a", "b"}, types.Pagination{Page: 2, Limit: 10, Total: 42, Pages: 5})

	var payload struct {
		Success    bool             `json:"success"`
		Data       []string         `json:"data"`
		Pagination types.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !payload.Success {
		t.Fatal("expected success=true")
	}
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload.Data))
	}
	if payload.Pagination.Total != 42 || payload.Pagination.Pages != 5 {
		t.Fatalf("unexpected pagination: %+v", payload.Pagination)
	}
}

func TestWriteErrorMapsTypedCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   pkgerrors.Code
	}{
		{"validation", pkgerrors.New(pkgerrors.CodeValidation, "bad input"), http.StatusBadRequest, pkgerrors.CodeValidation},
		{"unauthorized", pkgerrors.New(pkgerrors.CodeUnauthorized, "no token"), http.StatusUnauthorized, pkgerrors.CodeUnauthorized},
		{"forbidden", pkgerrors.New(pkgerrors.CodeForbidden, "nope"), http.StatusForbidden, pkgerrors.CodeForbidden},
		{"not found", pkgerrors.New(pkgerrors.CodeNotFound, "missing"), http.StatusNotFound, pkgerrors.CodeNotFound},
		{"conflict", pkgerrors.New(pkgerrors.CodeConflict, "duplicate"), http.StatusBadRequest, pkgerrors.CodeConflict},
		{"rate limit", pkgerrors.New(pkgerrors.CodeRateLimit, "slow down"), http.StatusTooManyRequests, pkgerrors.CodeRateLimit},
		{"internal", pkgerrors.New(pkgerrors.CodeInternal, "boom"), http.StatusInternalServerError, pkgerrors.CodeInternal},
		{"untyped", context.DeadlineExceeded, http.StatusInternalServerError, pkgerrors.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}

			var payload struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if payload.Success {
				t.Fatal("expected success=false on error responses")
			}
			if payload.Error.Code != string(tc.wantCode) {
				t.Fatalf("expected code %s, got %s", tc.wantCode, payload.Error.Code)
			}
		})
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeInternal, "db exploded").WithDetails(map[string]any{"table": "users"})
	WriteError(context.Background(), nil, rec, err)

	var payload struct {
		Error struct {
			Message string `json:"message"`
			Details any    `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Error.Message == "db exploded" {
		t.Fatal("internal message should not leak to clients")
	}
	if payload.Error.Details != nil {
		t.Fatalf("internal details should not leak, got %v", payload.Error.Details)
	}
}
