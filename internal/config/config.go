package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ticketwise/backend/internal/service"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`

	DatasetFile string `mapstructure:"DATASET_FILE"`
	OutputFile  string `mapstructure:"OUTPUT_FILE"`

	CapacityCeiling         int     `mapstructure:"CAPACITY_CEILING"`
	WeightSkill             float64 `mapstructure:"WEIGHT_SKILL"`
	WeightLoad              float64 `mapstructure:"WEIGHT_LOAD"`
	WeightExperience        float64 `mapstructure:"WEIGHT_EXPERIENCE"`
	WeightBonus             float64 `mapstructure:"WEIGHT_BONUS"`
	ExperiencePriorityBoost float64 `mapstructure:"EXPERIENCE_PRIORITY_BOOST"`
	MinTokenLength          int     `mapstructure:"MIN_TOKEN_LENGTH"`
	ExtraStopWords          string  `mapstructure:"EXTRA_STOP_WORDS"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DATASET_FILE", "dataset.json")
	v.SetDefault("OUTPUT_FILE", "output_result.json")

	defaults := service.DefaultConfig()
	v.SetDefault("CAPACITY_CEILING", defaults.CapacityCeiling)
	v.SetDefault("WEIGHT_SKILL", defaults.WeightSkill)
	v.SetDefault("WEIGHT_LOAD", defaults.WeightLoad)
	v.SetDefault("WEIGHT_EXPERIENCE", defaults.WeightExperience)
	v.SetDefault("WEIGHT_BONUS", defaults.WeightBonus)
	v.SetDefault("EXPERIENCE_PRIORITY_BOOST", defaults.ExperiencePriorityBoost)
	v.SetDefault("MIN_TOKEN_LENGTH", defaults.MinTokenLength)
	v.SetDefault("EXTRA_STOP_WORDS", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Assignment maps the flat environment config onto the engine configuration.
func (c Config) Assignment() service.Config {
	cfg := service.Config{
		CapacityCeiling:         c.CapacityCeiling,
		WeightSkill:             c.WeightSkill,
		WeightLoad:              c.WeightLoad,
		WeightExperience:        c.WeightExperience,
		WeightBonus:             c.WeightBonus,
		ExperiencePriorityBoost: c.ExperiencePriorityBoost,
		MinTokenLength:          c.MinTokenLength,
	}
	if words := strings.TrimSpace(c.ExtraStopWords); words != "" {
		cfg.ExtraStopWords = strings.Split(words, ",")
	}
	return cfg
}
