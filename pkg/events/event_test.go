package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("credit.customer.registered", "1001", "Customer")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "credit.customer.registered" {
		t.Errorf("expected event type %q, got %q", "credit.customer.registered", event.EventType())
	}

	if event.AggregateID() != "1001" {
		t.Errorf("expected aggregate ID %q, got %q", "1001", event.AggregateID())
	}

	if event.AggregateType() != "Customer" {
		t.Errorf("expected aggregate type %q, got %q", "Customer", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventUniqueIDs(t *testing.T) {
	e1 := NewBaseEvent("credit.loan.created", "5001", "Loan")
	e2 := NewBaseEvent("credit.loan.created", "5001", "Loan")

	if e1.EventID() == e2.EventID() {
		t.Error("expected distinct event IDs for separate events")
	}
}

func TestBaseEventJSONRoundTrip(t *testing.T) {
	event := NewBaseEvent("credit.decision.evaluated", "1001", "Customer")

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if parsed["event_type"] != "credit.decision.evaluated" {
		t.Errorf("expected event_type in payload, got %v", parsed["event_type"])
	}
	if parsed["aggregate_id"] != "1001" {
		t.Errorf("expected aggregate_id in payload, got %v", parsed["aggregate_id"])
	}
}
