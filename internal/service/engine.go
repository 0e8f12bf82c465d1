package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketwise/backend/internal/models"
)

const (
	StatusAssigned   = "ASSIGNED"
	StatusUnassigned = "UNASSIGNED"
	StatusError      = "ERROR"
)

// Engine runs one batch of tickets against one agent pool. The agent slice is
// the engine's owned working set for the run: assignments increment the
// winner's CurrentLoad in place, so later tickets see the consumed capacity.
type Engine struct {
	Config Config
	Logger zerolog.Logger
}

// RunAssignment is the plain-function entry point for callers that do not
// need logging.
func RunAssignment(agents []models.Agent, tickets []models.Ticket, cfg Config) ([]models.AssignmentRecord, models.RunSummary, error) {
	e := &Engine{Config: cfg, Logger: zerolog.Nop()}
	return e.Run(agents, tickets)
}

// Run processes tickets in priority order (Critical first, input order within
// a priority) in a single sequential pass. It emits exactly one record per
// input ticket. Configuration errors abort the run before any ticket is
// touched; malformed records are reported in their own record and never stop
// the batch.
func (e *Engine) Run(agents []models.Agent, tickets []models.Ticket) ([]models.AssignmentRecord, models.RunSummary, error) {
	if err := e.Config.Validate(); err != nil {
		return nil, models.RunSummary{}, err
	}

	summary := models.RunSummary{Counts: map[string]any{}}
	start := time.Now()
	summary.Events = append(summary.Events, map[string]any{
		"type":    "batch_start",
		"agents":  len(agents),
		"tickets": len(tickets),
		"time":    start.UTC(),
	})

	valid, skippedAgents := e.splitAgents(agents)
	scorer := NewScorer(e.Config, pickAgents(agents, valid))

	var (
		assignedCount        int
		unassignedCount      int
		skippedTickets       int
		topUnassignedReasons = map[string]int{}
	)

	records := make([]models.AssignmentRecord, 0, len(tickets))
	for _, ti := range ticketOrder(tickets) {
		t := tickets[ti]

		if reason := malformedTicket(t); reason != "" {
			skippedTickets++
			e.Logger.Warn().Str("ticket_id", t.ID).Str("reason", reason).Msg("skipping malformed ticket")
			records = append(records, models.AssignmentRecord{
				TicketID:   t.ID,
				Title:      t.Title,
				Status:     StatusError,
				ReasonCode: "MALFORMED_RECORD",
				Rationale:  "skipped: " + reason,
				AssignedAt: time.Now().UTC(),
			})
			continue
		}

		best := -1
		var bestResult ScoreResult
		for _, ai := range valid {
			res := scorer.Score(t, agents[ai])
			if !res.Eligible {
				continue
			}
			if best == -1 || better(res, agents[ai], bestResult, agents[best]) {
				best = ai
				bestResult = res
			}
		}

		if best == -1 {
			unassignedCount++
			topUnassignedReasons["NO_ELIGIBLE_AGENTS"]++
			records = append(records, models.AssignmentRecord{
				TicketID:   t.ID,
				Title:      t.Title,
				Status:     StatusUnassigned,
				ReasonCode: "NO_ELIGIBLE_AGENTS",
				Rationale:  "no suitable agent was available",
				AssignedAt: time.Now().UTC(),
			})
			continue
		}

		agentID := agents[best].ID
		records = append(records, models.AssignmentRecord{
			TicketID:        t.ID,
			Title:           t.Title,
			AssignedAgentID: &agentID,
			Score:           bestResult.Score,
			Status:          StatusAssigned,
			ReasonCode:      "ASSIGNED",
			Rationale:       bestResult.Rationale,
			AssignedAt:      time.Now().UTC(),
		})
		agents[best].CurrentLoad++
		assignedCount++

		e.Logger.Debug().
			Str("ticket_id", t.ID).
			Str("agent_id", agentID).
			Float64("score", bestResult.Score).
			Msg("ticket assigned")
	}

	summary.Events = append(summary.Events, map[string]any{
		"type":       "assignment",
		"assigned":   assignedCount,
		"unassigned": unassignedCount,
		"skipped":    skippedTickets,
		"time":       time.Now().UTC(),
	})
	summary.Events = append(summary.Events, map[string]any{
		"type":       "batch_complete",
		"elapsed_ms": time.Since(start).Milliseconds(),
		"time":       time.Now().UTC(),
	})

	summary.Counts["tickets_processed"] = len(tickets)
	summary.Counts["assigned"] = assignedCount
	summary.Counts["unassigned"] = unassignedCount
	summary.Counts["tickets_skipped"] = skippedTickets
	summary.Counts["agents_skipped"] = skippedAgents
	summary.Counts["top_unassigned_reasons"] = topUnassignedReasons
	return records, summary, nil
}

// better reports whether candidate a beats the current best b. Ties on score
// go to the lower current load, then the lexically smaller agent ID.
func better(a ScoreResult, agentA models.Agent, b ScoreResult, agentB models.Agent) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if agentA.CurrentLoad != agentB.CurrentLoad {
		return agentA.CurrentLoad < agentB.CurrentLoad
	}
	return agentA.ID < agentB.ID
}

// ticketOrder returns ticket indexes sorted by priority rank descending,
// stable so input order breaks ties.
func ticketOrder(tickets []models.Ticket) []int {
	order := make([]int, len(tickets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return models.PriorityRank(tickets[order[i]].Priority) > models.PriorityRank(tickets[order[j]].Priority)
	})
	return order
}

func (e *Engine) splitAgents(agents []models.Agent) (valid []int, skipped int) {
	for i, a := range agents {
		if reason := malformedAgent(a); reason != "" {
			skipped++
			e.Logger.Warn().Str("agent_id", a.ID).Str("reason", reason).Msg("skipping malformed agent")
			continue
		}
		valid = append(valid, i)
	}
	return valid, skipped
}

func pickAgents(agents []models.Agent, idx []int) []models.Agent {
	out := make([]models.Agent, 0, len(idx))
	for _, i := range idx {
		out = append(out, agents[i])
	}
	return out
}

func malformedTicket(t models.Ticket) string {
	if t.ID == "" {
		return "missing ticket_id"
	}
	if t.Text() == "" {
		return fmt.Sprintf("ticket %s has no title or description", t.ID)
	}
	return ""
}

func malformedAgent(a models.Agent) string {
	if a.ID == "" {
		return "missing agent_id"
	}
	if len(a.Skills) == 0 {
		return fmt.Sprintf("agent %s has no skills", a.ID)
	}
	return ""
}
