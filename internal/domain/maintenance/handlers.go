package maintenance

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Teams requests are assigned to.
const (
	AssigneeHeadMechanic     = "Head Mechanic"
	AssigneeTiresWarehouse   = "Tires Warehouse"
	AssigneeExternalWorkshop = "External Workshop"
)

// EngineHandler queues engine issues for Head Mechanic approval.
type EngineHandler struct {
	logger *slog.Logger
}

// Handle implements Handler.
func (h *EngineHandler) Handle(req Request) Outcome {
	priority := enginePriority(req.Description)
	out := newOutcome(req, StatusPendingApproval, AssigneeHeadMechanic,
		fmt.Sprintf("Engine issue for vehicle %d awaits Head Mechanic approval", req.VehicleID))
	out.Priority = priority

	logHandled(h.logger, out)
	return out
}

// TiresHandler routes tire issues to the warehouse after checking stock.
type TiresHandler struct {
	logger *slog.Logger
}

// Handle implements Handler.
func (h *TiresHandler) Handle(req Request) Outcome {
	checked := true
	out := newOutcome(req, StatusPending, AssigneeTiresWarehouse,
		fmt.Sprintf("Tire request for vehicle %d sent to the warehouse", req.VehicleID))
	out.InventoryChecked = &checked

	logHandled(h.logger, out)
	return out
}

// ElectricalHandler schedules electrical issues at an external workshop.
type ElectricalHandler struct {
	logger *slog.Logger
}

// Handle implements Handler.
func (h *ElectricalHandler) Handle(req Request) Outcome {
	out := newOutcome(req, StatusScheduled, AssigneeExternalWorkshop,
		fmt.Sprintf("Electrical issue for vehicle %d scheduled at an external workshop", req.VehicleID))
	out.EstimatedTime = electricalEstimate(req.Description)

	logHandled(h.logger, out)
	return out
}

func newOutcome(req Request, status Status, assignee, msg string) Outcome {
	return Outcome{
		Success:    true,
		RequestID:  uuid.NewString(),
		VehicleID:  req.VehicleID,
		IssueType:  req.IssueType,
		Status:     status,
		Message:    msg,
		AssignedTo: assignee,
	}
}

func logHandled(logger *slog.Logger, out Outcome) {
	if logger == nil {
		return
	}
	logger.Info("maintenance request handled",
		slog.String("request_id", out.RequestID),
		slog.Int64("vehicle_id", out.VehicleID),
		slog.String("issue_type", out.IssueType),
		slog.String("assigned_to", out.AssignedTo),
	)
}

// Keyword lists are checked in order; the first match sets the priority.
var priorityKeywords = []struct {
	priority Priority
	words    []string
}{
	{PriorityCritical, []string{"critical", "failure", "fire", "smoke", "seized"}},
	{PriorityHigh, []string{"overheat", "leak", "knock", "stall"}},
	{PriorityMedium, []string{"noise", "vibration", "warning", "check engine"}},
}

func enginePriority(description string) Priority {
	d := strings.ToLower(description)
	if strings.TrimSpace(d) == "" {
		return PriorityLow
	}
	for _, pk := range priorityKeywords {
		for _, w := range pk.words {
			if strings.Contains(d, w) {
				return pk.priority
			}
		}
	}
	return PriorityMedium
}

func electricalEstimate(description string) string {
	d := strings.ToLower(description)
	if strings.Contains(d, "complete") || strings.Contains(d, "system") {
		return "3-5 business days"
	}
	return "1-2 business days"
}
