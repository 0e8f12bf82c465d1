package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/ticketwise/backend/internal/models"
)

// Dataset is the on-disk input shape: one agent pool and one ticket batch.
type Dataset struct {
	Agents  []models.Agent  `json:"agents"`
	Tickets []models.Ticket `json:"tickets"`
}

// Output is the on-disk result shape.
type Output struct {
	Assignments []models.AssignmentRecord `json:"assignments"`
	Summary     models.RunSummary         `json:"summary"`
}

// Load reads and parses a dataset file. Field-level problems are returned as
// warnings, one per offending record; the records stay in the dataset so the
// engine can account for every input ticket.
func Load(path string) (Dataset, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates an in-memory dataset document.
func Parse(raw []byte) (Dataset, []string, error) {
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, nil, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, Validate(ds), nil
}

// Validate checks every record against its schema tags and returns one
// warning per violation.
func Validate(ds Dataset) []string {
	v := validator.New()
	var warnings []string
	for i, a := range ds.Agents {
		if err := v.Struct(a); err != nil {
			warnings = append(warnings, fmt.Sprintf("agent[%d] (%s): %v", i, a.ID, err))
		}
	}
	for i, t := range ds.Tickets {
		if err := v.Struct(t); err != nil {
			warnings = append(warnings, fmt.Sprintf("ticket[%d] (%s): %v", i, t.ID, err))
		}
	}
	return warnings
}

// WriteResults writes the assignment output as indented JSON.
func WriteResults(path string, out Output) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
