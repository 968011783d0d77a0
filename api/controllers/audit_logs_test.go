package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseAuditFiltersDateRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/audit-logs?start_date=2026-08-01&end_date=2026-08-15", nil)
	filters, err := parseAuditFilters(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filters.From == nil || !filters.From.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start at midnight, got %v", filters.From)
	}

	// A bare end date covers its whole day.
	endOfDay := time.Date(2026, 8, 15, 23, 59, 59, 999999999, time.UTC)
	if filters.To == nil || !filters.To.Equal(endOfDay) {
		t.Fatalf("expected end of day bound, got %v", filters.To)
	}
	if !filters.To.Before(time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end bound must stay inside the requested day, got %v", filters.To)
	}
}

func TestParseAuditFiltersExplicitTimestampUnchanged(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/audit-logs?end_date=2026-08-15T10:30:00Z", nil)
	filters, err := parseAuditFilters(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.To == nil || !filters.To.Equal(time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected explicit timestamp preserved, got %v", filters.To)
	}
}
