package models

import "time"

// Availability statuses an agent can report. Anything other than
// AvailabilityAvailable keeps the agent out of the candidate pool.
const (
	AvailabilityAvailable = "Available"
	AvailabilityBusy      = "Busy"
	AvailabilityOffline   = "Offline"
)

// Ticket priorities, highest first in processing order.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// PriorityRank maps a priority label to its processing rank. Unknown or
// missing priorities rank below Low so they are processed last.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type Agent struct {
	ID              string         `json:"agent_id" validate:"required"`
	Name            string         `json:"name"`
	Skills          map[string]int `json:"skills" validate:"required"`
	CurrentLoad     int            `json:"current_load" validate:"min=0"`
	Availability    string         `json:"availability_status"`
	ExperienceLevel int            `json:"experience_level" validate:"min=0"`
}

type Ticket struct {
	ID          string            `json:"ticket_id" validate:"required"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    string            `json:"priority"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at,omitempty"`
}

// Text returns the free text the matcher sees for this ticket.
func (t Ticket) Text() string {
	if t.Title == "" {
		return t.Description
	}
	if t.Description == "" {
		return t.Title
	}
	return t.Title + " " + t.Description
}

// RequiredSkill returns the metadata-declared must-have skill, if any.
func (t Ticket) RequiredSkill() string {
	if t.Metadata == nil {
		return ""
	}
	return t.Metadata["required_skill"]
}

type AssignmentRecord struct {
	TicketID        string    `json:"ticket_id"`
	Title           string    `json:"title"`
	AssignedAgentID *string   `json:"assigned_agent_id"`
	Score           float64   `json:"score"`
	Status          string    `json:"status"`
	ReasonCode      string    `json:"reason_code"`
	Rationale       string    `json:"rationale"`
	AssignedAt      time.Time `json:"assigned_at"`
}

type Run struct {
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
	Summary    RunSummary `json:"summary"`
}

// RunSummary aggregates counts and timestamped events for one batch run.
type RunSummary struct {
	Events []map[string]any `json:"events"`
	Counts map[string]any   `json:"counts"`
}
