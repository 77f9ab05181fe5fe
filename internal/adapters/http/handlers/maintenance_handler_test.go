package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/mocks"
)

func newMaintenanceHandler(t *testing.T) (*handlers.MaintenanceHandler, *mocks.MockMaintenanceService) {
	t.Helper()
	svc := mocks.NewMockMaintenanceService(t)
	return handlers.NewMaintenanceHandler(svc), svc
}

func postMaintenance(h *handlers.MaintenanceHandler, body *bytes.Buffer) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/maintenance/request", body)
	req.Header.Set("Content-Type", "application/json")
	h.Submit(rec, req)
	return rec
}

// --- Submit ---

func TestSubmit_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMaintenanceHandler(t)

	checked := true
	svc.EXPECT().Submit(mock.Anything, maintenance.Request{VehicleID: 42, IssueType: "tires"}).
		Return(&maintenance.Outcome{
			Success:          true,
			RequestID:        "req-1",
			VehicleID:        42,
			IssueType:        "tires",
			Status:           maintenance.StatusPending,
			AssignedTo:       maintenance.AssigneeTiresWarehouse,
			InventoryChecked: &checked,
		}, nil)

	rec := postMaintenance(h, jsonBody(t, map[string]any{"vehicle_id": 42, "issue_type": "tires"}))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.MaintenanceResponse](t, rec)
	if resp.AssignedTo != maintenance.AssigneeTiresWarehouse {
		t.Errorf("AssignedTo = %q, want %q", resp.AssignedTo, maintenance.AssigneeTiresWarehouse)
	}
	if resp.InventoryChecked == nil || !*resp.InventoryChecked {
		t.Errorf("InventoryChecked = %v, want true", resp.InventoryChecked)
	}
}

func TestSubmit_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newMaintenanceHandler(t)

	rec := postMaintenance(h, bytes.NewBufferString("{bad"))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSubmit_MissingFields(t *testing.T) {
	t.Parallel()
	h, _ := newMaintenanceHandler(t)

	rec := postMaintenance(h, jsonBody(t, map[string]any{"description": "flat"}))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(resp.Errors))
	}
}

func TestSubmit_UnknownIssueType(t *testing.T) {
	t.Parallel()
	h, svc := newMaintenanceHandler(t)

	svc.EXPECT().Submit(mock.Anything, mock.AnythingOfType("maintenance.Request")).
		Return(nil, domain.NewFieldError("issue_type", `no maintenance handler registered for "brakes"`))

	rec := postMaintenance(h, jsonBody(t, map[string]any{"vehicle_id": 1, "issue_type": "brakes"}))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.issue_type" {
		t.Errorf("Errors = %+v, want one on body.issue_type", resp.Errors)
	}
}

func TestSubmit_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newMaintenanceHandler(t)

	svc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, errors.New("bootstrap failed"))

	rec := postMaintenance(h, jsonBody(t, map[string]any{"vehicle_id": 1, "issue_type": "engine"}))

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- Types ---

func TestMaintenanceTypes_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMaintenanceHandler(t)

	svc.EXPECT().Types(mock.Anything).Return([]string{"electrical", "engine", "tires"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/types", nil)
	h.Types(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TypesResponse](t, rec)
	if resp.Count != 3 {
		t.Errorf("Count = %d, want 3", resp.Count)
	}
}
