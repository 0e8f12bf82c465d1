package config

import (
	"testing"

	"github.com/ticketwise/backend/internal/service"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port == "" || cfg.LogLevel == "" {
		t.Fatalf("expected server defaults, got %+v", cfg)
	}
	if cfg.DatasetFile != "dataset.json" || cfg.OutputFile != "output_result.json" {
		t.Fatalf("expected dataset file defaults, got %+v", cfg)
	}
	if err := cfg.Assignment().Validate(); err != nil {
		t.Fatalf("expected default assignment config to validate, got %v", err)
	}
}

func TestAssignmentMapping(t *testing.T) {
	cfg := Config{
		CapacityCeiling:         4,
		WeightSkill:             0.6,
		WeightLoad:              0.2,
		WeightExperience:        0.1,
		WeightBonus:             0.1,
		ExperiencePriorityBoost: 1.5,
		MinTokenLength:          3,
		ExtraStopWords:          "please,hello",
	}
	got := cfg.Assignment()
	want := service.Config{
		CapacityCeiling:         4,
		WeightSkill:             0.6,
		WeightLoad:              0.2,
		WeightExperience:        0.1,
		WeightBonus:             0.1,
		ExperiencePriorityBoost: 1.5,
		MinTokenLength:          3,
	}
	if got.CapacityCeiling != want.CapacityCeiling || got.WeightSkill != want.WeightSkill ||
		got.ExperiencePriorityBoost != want.ExperiencePriorityBoost || got.MinTokenLength != want.MinTokenLength {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if len(got.ExtraStopWords) != 2 || got.ExtraStopWords[0] != "please" {
		t.Fatalf("expected stop words split, got %v", got.ExtraStopWords)
	}
}
