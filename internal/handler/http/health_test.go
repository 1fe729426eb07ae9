package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		setup      func(mock sqlmock.Sqlmock)
		wantCode   int
		wantStatus string
	}{
		{
			name: "healthy database",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
			},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name: "ping failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(sql.ErrConnDone)
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer db.Close()
			tc.setup(mock)

			handler := &HealthHandler{DB: db, Version: "test"}
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tc.wantCode {
				t.Fatalf("status code = %d, want %d", rr.Code, tc.wantCode)
			}

			var resp HealthResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tc.wantStatus {
				t.Errorf("resp.Status = %q, want %q", resp.Status, tc.wantStatus)
			}
			if resp.Version != "test" {
				t.Errorf("resp.Version = %q, want %q", resp.Version, "test")
			}
			if _, ok := resp.Checks["database"]; !ok {
				t.Error("response is missing the database check")
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	handler := &HealthHandler{Version: "test"}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Checks["database"].Message != "database connection not configured" {
		t.Errorf("database check = %+v, want not-configured message", resp.Checks["database"])
	}
}

func TestHealthHandler_PoolStatsIncluded(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	mock.ExpectPing()

	handler := &HealthHandler{DB: db, Version: "test"}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	details := resp.Checks["database"].Details
	if details == nil {
		t.Fatal("database check has no details")
	}
	if _, ok := details["open_connections"]; !ok {
		t.Error("details are missing open_connections")
	}
}
