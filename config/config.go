package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Agent  AgentConfig  `yaml:"agent"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8000"`
}

type AgentConfig struct {
	// DefaultTimezone is used when the user asks for the time without
	// naming a known city.
	DefaultTimezone string `yaml:"default_timezone" env:"DEFAULT_TIMEZONE" env-default:"Africa/Johannesburg"`
	// ShowToolTrace controls whether front-ends render the per-turn
	// tool invocation records alongside the reply.
	ShowToolTrace bool `yaml:"show_tool_trace" env:"SHOW_TOOL_TRACE" env-default:"true"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
