package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ticketwise/backend/internal/matching"
	"github.com/ticketwise/backend/internal/models"
)

// IneligibleScore marks an agent that is not a candidate for a ticket.
const IneligibleScore = -1

// ScoreResult is the scorer's verdict for one (ticket, agent) pair.
type ScoreResult struct {
	AgentID    string
	Score      float64
	Eligible   bool
	ReasonCode string
	Rationale  string

	Skill      float64
	Workload   float64
	Experience float64
	Bonus      float64
}

// Scorer computes compatibility scores between tickets and agents. It holds
// a keyword index derived from one agent pool and is valid for one run.
type Scorer struct {
	cfg     Config
	matcher *matching.Matcher
	index   *matching.Index
}

func NewScorer(cfg Config, agents []models.Agent) *Scorer {
	skillSets := make([]map[string]int, 0, len(agents))
	for _, a := range agents {
		skillSets = append(skillSets, a.Skills)
	}
	return &Scorer{
		cfg:     cfg,
		matcher: matching.NewMatcher(cfg.MinTokenLength, cfg.ExtraStopWords),
		index:   matching.IndexFromSkills(skillSets...),
	}
}

// Score gates on availability and capacity, then combines skill match,
// workload headroom, experience and a required-skill bonus into a single
// score in [0,1].
func (s *Scorer) Score(ticket models.Ticket, agent models.Agent) ScoreResult {
	res := ScoreResult{AgentID: agent.ID, Score: IneligibleScore}

	if agent.Availability != models.AvailabilityAvailable {
		res.ReasonCode = "AGENT_UNAVAILABLE"
		res.Rationale = fmt.Sprintf("agent %s is %s", agent.ID, agent.Availability)
		return res
	}
	if agent.CurrentLoad >= s.cfg.CapacityCeiling {
		res.ReasonCode = "AGENT_AT_CAPACITY"
		res.Rationale = fmt.Sprintf("agent %s at capacity (%d/%d)", agent.ID, agent.CurrentLoad, s.cfg.CapacityCeiling)
		return res
	}

	res.Eligible = true
	res.Skill = s.matcher.SkillMatchScore(ticket.Text(), agent.Skills, s.index)
	res.Workload = 1 - float64(agent.CurrentLoad)/float64(s.cfg.CapacityCeiling)
	res.Experience = normalizedExperience(agent.ExperienceLevel)
	if requiredSkillMatches(ticket, agent) {
		res.Bonus = 1
	}

	experienceTerm := s.cfg.WeightExperience * res.Experience
	if urgent(ticket.Priority) {
		experienceTerm *= s.cfg.ExperiencePriorityBoost
	}

	score := s.cfg.WeightSkill*res.Skill +
		s.cfg.WeightLoad*res.Workload +
		experienceTerm +
		s.cfg.WeightBonus*res.Bonus
	res.Score = clamp01(score)
	res.Rationale = s.rationale(res, experienceTerm)
	return res
}

// rationale names the top one or two weighted contributions.
func (s *Scorer) rationale(res ScoreResult, experienceTerm float64) string {
	type factor struct {
		text     string
		weighted float64
	}
	factors := []factor{
		{fmt.Sprintf("%s skill match (%.2f)", strength(res.Skill), res.Skill), s.cfg.WeightSkill * res.Skill},
		{loadDescription(res.Workload), s.cfg.WeightLoad * res.Workload},
		{fmt.Sprintf("experience level (%.2f)", res.Experience), experienceTerm},
	}
	if res.Bonus > 0 {
		factors = append(factors, factor{"required skill match", s.cfg.WeightBonus * res.Bonus})
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].weighted > factors[j].weighted
	})

	parts := make([]string, 0, 2)
	for _, f := range factors {
		if f.weighted <= 0 || len(parts) == 2 {
			break
		}
		parts = append(parts, f.text)
	}
	if len(parts) == 0 {
		return "no positive scoring factors"
	}
	return strings.Join(parts, "; ")
}

func requiredSkillMatches(ticket models.Ticket, agent models.Agent) bool {
	required := matching.NormalizeSkill(ticket.RequiredSkill())
	if required == "" {
		return false
	}
	for skill := range agent.Skills {
		if matching.NormalizeSkill(skill) == required {
			return true
		}
	}
	return false
}

func normalizedExperience(level int) float64 {
	if level <= 0 {
		return 0
	}
	if level > maxExperienceLevel {
		level = maxExperienceLevel
	}
	return float64(level) / maxExperienceLevel
}

func urgent(priority string) bool {
	return priority == models.PriorityHigh || priority == models.PriorityCritical
}

func strength(skill float64) string {
	switch {
	case skill >= 0.5:
		return "strong"
	case skill >= 0.2:
		return "moderate"
	case skill > 0:
		return "weak"
	default:
		return "no"
	}
}

func loadDescription(workload float64) string {
	switch {
	case workload >= 0.75:
		return "low current load"
	case workload >= 0.4:
		return "moderate current load"
	default:
		return "high current load"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
