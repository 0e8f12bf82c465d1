// Package store holds the current dataset and the latest run results in
// memory. It backs the HTTP API between import and process calls; nothing
// here survives a restart, by scope.
package store

import (
	"errors"
	"sync"

	"github.com/ticketwise/backend/internal/models"
)

var ErrNoDataset = errors.New("no dataset loaded")

var ErrNoRun = errors.New("no assignment run recorded")

type Store struct {
	mu      sync.RWMutex
	agents  []models.Agent
	tickets []models.Ticket
	records []models.AssignmentRecord
	lastRun *models.Run
}

func New() *Store {
	return &Store{}
}

// ReplaceDataset installs a new agent pool and ticket batch, discarding any
// previous run results.
func (s *Store) ReplaceDataset(agents []models.Agent, tickets []models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = append([]models.Agent(nil), agents...)
	s.tickets = append([]models.Ticket(nil), tickets...)
	s.records = nil
	s.lastRun = nil
}

// Snapshot returns copies of the dataset for one run. The agent copy is the
// engine's mutable working set; the store is untouched until SaveRun.
func (s *Store) Snapshot() ([]models.Agent, []models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.agents) == 0 && len(s.tickets) == 0 {
		return nil, nil, ErrNoDataset
	}
	agents := append([]models.Agent(nil), s.agents...)
	tickets := append([]models.Ticket(nil), s.tickets...)
	return agents, tickets, nil
}

// SaveRun stores the run outcome and the post-run agent loads.
func (s *Store) SaveRun(agents []models.Agent, records []models.AssignmentRecord, run models.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = append([]models.Agent(nil), agents...)
	s.records = append([]models.AssignmentRecord(nil), records...)
	s.lastRun = &run
}

func (s *Store) Agents() []models.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Agent(nil), s.agents...)
}

func (s *Store) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Ticket(nil), s.tickets...)
}

func (s *Store) Assignments() []models.AssignmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AssignmentRecord(nil), s.records...)
}

func (s *Store) LatestRun() (models.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastRun == nil {
		return models.Run{}, ErrNoRun
	}
	return *s.lastRun, nil
}
