package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/server/http/handlers"
	testhelpers "github.com/coiffly/coiffly/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SalonFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{Token: "session-token", Role: model.RoleSalon},
		BookingFacadeStub: testhelpers.BookingFacadeStub{Items: []model.Booking{
			{ID: "b-1", Status: model.BookingStatusConfirmed},
		}},
		TokenParserStub: testhelpers.TokenParserStub{UserID: 7},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"login": "amelie", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/bookings/upcoming", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/bookings/upcoming", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for upcoming bookings, got %d", resp.Code)
	}

	statusBody, _ := json.Marshal(map[string]string{"status": "in_progress"})
	req = httptest.NewRequest(http.MethodPatch, "/api/bookings/b-1/status", bytes.NewReader(statusBody))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for staff status update, got %d", resp.Code)
	}
}

func TestSetupRejectsClientStatusUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SalonFacadeStub{
		AuthFacadeStub:  testhelpers.AuthFacadeStub{Role: model.RoleClient},
		TokenParserStub: testhelpers.TokenParserStub{UserID: 7},
	}
	engine := Setup(facade, logger)

	statusBody, _ := json.Marshal(map[string]string{"status": "shipped"})
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o-1/status", bytes.NewReader(statusBody))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for client role, got %d", resp.Code)
	}
}

var _ handlers.SalonFacade = (*testhelpers.SalonFacadeStub)(nil)
