package service

import (
	"errors"
	"fmt"

	"github.com/ticketwise/backend/internal/matching"
)

// Default scoring constants. The weights are hand-tuned, fixed values; the
// assignment must be reproducible across runs, so none of them are learned or
// adjusted at runtime.
const (
	DefaultCapacityCeiling         = 8
	DefaultWeightSkill             = 0.50
	DefaultWeightLoad              = 0.25
	DefaultWeightExperience        = 0.15
	DefaultWeightBonus             = 0.10
	DefaultExperiencePriorityBoost = 1.2

	// maxExperienceLevel caps experience normalization.
	maxExperienceLevel = 15
)

var ErrInvalidConfig = errors.New("invalid assignment configuration")

// Config is the full scoring and assignment configuration. Overriding one
// field leaves every other field at its default.
type Config struct {
	CapacityCeiling         int
	WeightSkill             float64
	WeightLoad              float64
	WeightExperience        float64
	WeightBonus             float64
	ExperiencePriorityBoost float64
	MinTokenLength          int
	ExtraStopWords          []string
}

func DefaultConfig() Config {
	return Config{
		CapacityCeiling:         DefaultCapacityCeiling,
		WeightSkill:             DefaultWeightSkill,
		WeightLoad:              DefaultWeightLoad,
		WeightExperience:        DefaultWeightExperience,
		WeightBonus:             DefaultWeightBonus,
		ExperiencePriorityBoost: DefaultExperiencePriorityBoost,
		MinTokenLength:          matching.DefaultMinTokenLength,
	}
}

// Validate rejects configurations that would silently corrupt every score.
// It runs before any ticket is processed; a failure aborts the whole run.
func (c Config) Validate() error {
	if c.CapacityCeiling <= 0 {
		return fmt.Errorf("%w: capacity ceiling must be positive, got %d", ErrInvalidConfig, c.CapacityCeiling)
	}
	for name, w := range map[string]float64{
		"skill":      c.WeightSkill,
		"load":       c.WeightLoad,
		"experience": c.WeightExperience,
		"bonus":      c.WeightBonus,
	} {
		if w < 0 {
			return fmt.Errorf("%w: %s weight must be non-negative, got %f", ErrInvalidConfig, name, w)
		}
	}
	sum := c.WeightSkill + c.WeightLoad + c.WeightExperience + c.WeightBonus
	if sum <= 0 || sum > 1.5 {
		return fmt.Errorf("%w: weights sum to %f, want within (0, 1.5]", ErrInvalidConfig, sum)
	}
	if c.ExperiencePriorityBoost < 1 {
		return fmt.Errorf("%w: experience priority boost must be >= 1, got %f", ErrInvalidConfig, c.ExperiencePriorityBoost)
	}
	if c.MinTokenLength < 1 {
		return fmt.Errorf("%w: minimum token length must be at least 1, got %d", ErrInvalidConfig, c.MinTokenLength)
	}
	return nil
}
