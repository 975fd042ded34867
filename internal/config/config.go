// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for macroplate.
type Config struct {
	Catalog         []string                   `mapstructure:"catalog" yaml:"catalog,omitempty"`
	GoalLimit       int                        `mapstructure:"goal_limit" yaml:"goal_limit"`
	DeliveryWeeks   int                        `mapstructure:"delivery_weeks" yaml:"delivery_weeks"`
	DeliveryDay     string                     `mapstructure:"delivery_day" yaml:"delivery_day"`
	DataDir         string                     `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel        string                     `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string                     `mapstructure:"log_file" yaml:"log_file"`
	Offline         bool                       `mapstructure:"offline" yaml:"offline"`
	MCPAddr         string                     `mapstructure:"mcp_addr" yaml:"mcp_addr"`
	SummaryTemplate string                     `mapstructure:"summary_template" yaml:"summary_template"`
	Recommendation  signup.RecommendationRules `mapstructure:"recommendation" yaml:"recommendation"`
}

// envKeys are bound explicitly so nested and list values parse from the
// environment.
var envKeys = []string{
	"catalog",
	"goal_limit",
	"delivery_weeks",
	"delivery_day",
	"data_dir",
	"log_level",
	"log_file",
	"offline",
	"mcp_addr",
	"summary_template",
	"recommendation.vegetarian_proteins",
	"recommendation.protein_goals",
	"recommendation.paleo_allergies",
	"recommendation.weight_goals",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Catalog:        signup.DefaultCatalog().Strings(),
		GoalLimit:      signup.DefaultGoalLimit,
		DeliveryWeeks:  4,
		DeliveryDay:    signup.DefaultDeliveryDay,
		DataDir:        ".macroplate",
		LogLevel:       "info",
		MCPAddr:        "localhost:8765",
		Recommendation: signup.DefaultRecommendationRules(),
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults.
// Flags are applied by the caller on the returned Config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("macroplate")

	def := Default()
	v.SetDefault("catalog", def.Catalog)
	v.SetDefault("goal_limit", def.GoalLimit)
	v.SetDefault("delivery_weeks", def.DeliveryWeeks)
	v.SetDefault("delivery_day", def.DeliveryDay)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("offline", false)
	v.SetDefault("mcp_addr", def.MCPAddr)
	v.SetDefault("summary_template", "")
	v.SetDefault("recommendation.vegetarian_proteins", def.Recommendation.VegetarianProteins)
	v.SetDefault("recommendation.protein_goals", def.Recommendation.ProteinGoals)
	v.SetDefault("recommendation.paleo_allergies", def.Recommendation.PaleoAllergies)
	v.SetDefault("recommendation.weight_goals", def.Recommendation.WeightGoals)

	v.SetEnvPrefix("MACROPLATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		env := "MACROPLATE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that the wizard cannot recover from at runtime.
func (c *Config) Validate() error {
	if _, err := c.StepCatalog(); err != nil {
		return err
	}
	if c.GoalLimit < 1 {
		return fmt.Errorf("goal_limit must be >= 1, got %d", c.GoalLimit)
	}
	if c.DeliveryWeeks < 1 || c.DeliveryWeeks > 12 {
		return fmt.Errorf("delivery_weeks must be between 1 and 12, got %d", c.DeliveryWeeks)
	}
	if _, err := signup.ParseWeekday(c.DeliveryDay); err != nil {
		return fmt.Errorf("delivery_day: %w", err)
	}
	return nil
}

// StepCatalog parses the configured catalog. An empty list selects the
// default flow.
func (c *Config) StepCatalog() (signup.Catalog, error) {
	if len(c.Catalog) == 0 {
		return signup.DefaultCatalog(), nil
	}
	cat, err := signup.ParseCatalog(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return cat, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/macroplate/macroplate.yml or $XDG_CONFIG_HOME/macroplate/macroplate.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "macroplate", "macroplate.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "macroplate", "macroplate.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "macroplate.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
