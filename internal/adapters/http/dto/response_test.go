package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

func TestToMaintenanceResponse_OmitsUnsetFields(t *testing.T) {
	t.Parallel()

	resp := dto.ToMaintenanceResponse(&maintenance.Outcome{
		Success:    true,
		RequestID:  "req-1",
		VehicleID:  42,
		IssueType:  "electrical",
		Status:     maintenance.StatusPendingApproval,
		Message:    "sent to workshop",
		AssignedTo: maintenance.AssigneeExternalWorkshop,
	})

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got["status"] != "pending_approval" {
		t.Errorf("status = %v, want pending_approval", got["status"])
	}
	for _, key := range []string{"priority", "inventory_checked", "estimated_time"} {
		if _, ok := got[key]; ok {
			t.Errorf("%s present, want omitted", key)
		}
	}
}

func TestToMaintenanceResponse_InventoryCheckedFalse(t *testing.T) {
	t.Parallel()

	checked := false
	resp := dto.ToMaintenanceResponse(&maintenance.Outcome{InventoryChecked: &checked})

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if v, ok := got["inventory_checked"]; !ok || v != false {
		t.Errorf("inventory_checked = %v (present %t), want false", v, ok)
	}
}

func TestToTripCostResponse(t *testing.T) {
	t.Parallel()

	resp := dto.ToTripCostResponse(&trip.Cost{
		Total:   280,
		Details: map[string]float64{"distance_cost": 250, "time_cost": 30},
	})

	if resp.Message != dto.TripCostMessage {
		t.Errorf("Message = %q, want %q", resp.Message, dto.TripCostMessage)
	}
	if resp.Data.TotalCost != 280 {
		t.Errorf("TotalCost = %v, want 280", resp.Data.TotalCost)
	}
	if resp.Data.Details["time_cost"] != 30 {
		t.Errorf("Details = %v", resp.Data.Details)
	}
}

func TestToQuoteListResponse(t *testing.T) {
	t.Parallel()

	resp := dto.ToQuoteListResponse([]ports.Quote{
		{Type: "intercity", Cost: trip.Cost{Total: 250}},
		{Type: "local", Cost: trip.Cost{Total: 280}},
	})

	if resp.Count != 2 {
		t.Fatalf("Count = %d, want 2", resp.Count)
	}
	if resp.Quotes[1].Type != "local" || resp.Quotes[1].TotalCost != 280 {
		t.Errorf("Quotes[1] = %+v", resp.Quotes[1])
	}
	if resp.Quotes[0].Details == nil {
		t.Error("Details = nil, want empty map")
	}
}

func TestToTypesResponse_NilBecomesEmpty(t *testing.T) {
	t.Parallel()

	resp := dto.ToTypesResponse(nil)

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(raw) != `{"types":[],"count":0}` {
		t.Errorf("json = %s", raw)
	}
}

func TestToImageResponse(t *testing.T) {
	t.Parallel()

	resp := dto.ToImageResponse(&ports.Generation{Model: "gpt", Result: "https://images.local/gpt?prompt=van"})

	if resp.ImageURL != "https://images.local/gpt?prompt=van" || resp.Model != "gpt" {
		t.Errorf("ToImageResponse() = %+v", resp)
	}
}
