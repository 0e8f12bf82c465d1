package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ticketwise/backend/internal/models"
)

const sampleDataset = `{
  "agents": [
    {"agent_id": "a1", "name": "Riley", "skills": {"Networking": 8}, "current_load": 2, "availability_status": "Available", "experience_level": 9},
    {"agent_id": "", "skills": {"Networking": 3}}
  ],
  "tickets": [
    {"ticket_id": "t1", "title": "VPN outage", "description": "remote users dropped", "priority": "High"}
  ]
}`

func TestParseKeepsInvalidRecordsWithWarnings(t *testing.T) {
	ds, warnings, err := Parse([]byte(sampleDataset))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ds.Agents) != 2 || len(ds.Tickets) != 1 {
		t.Fatalf("expected all records kept, got %d agents %d tickets", len(ds.Agents), len(ds.Tickets))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for the blank agent id, got %v", warnings)
	}
}

func TestParseRejectsBrokenJSON(t *testing.T) {
	if _, _, err := Parse([]byte(`{"agents": [`)); err == nil {
		t.Fatalf("expected error for broken JSON")
	}
}

func TestLoadAndWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dataset.json")
	if err := os.WriteFile(in, []byte(sampleDataset), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, _, err := Load(in)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Tickets[0].ID != "t1" {
		t.Fatalf("unexpected ticket: %+v", ds.Tickets[0])
	}

	agentID := "a1"
	out := filepath.Join(dir, "output_result.json")
	err = WriteResults(out, Output{
		Assignments: []models.AssignmentRecord{{TicketID: "t1", AssignedAgentID: &agentID, Score: 0.8, Status: "ASSIGNED"}},
		Summary:     models.RunSummary{Counts: map[string]any{"assigned": 1}},
	})
	if err != nil {
		t.Fatalf("write results: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	var decoded Output
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if len(decoded.Assignments) != 1 || decoded.Assignments[0].TicketID != "t1" {
		t.Fatalf("unexpected round-trip output: %+v", decoded)
	}
}
