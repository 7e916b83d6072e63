package core

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Admission modes for city tiles spawning workers.
const (
	AdmissionBudget  = "budget"
	AdmissionPerTile = "per_tile"
)

// AgentConfig holds the decision policy settings.
type AgentConfig struct {
	WoodMinAmount int    `yaml:"wood_min_amount"`
	CityBuildCost int    `yaml:"city_build_cost"`
	Admission     string `yaml:"admission"`
	DayLength     int    `yaml:"day_length"`
	CycleLength   int    `yaml:"cycle_length"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level      string `yaml:"level"`
	Console    bool   `yaml:"console"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// WebConfig holds status UI related settings.
type WebConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

// Config corresponds to the structure of the YAML config file.
type Config struct {
	Agent   AgentConfig `yaml:"agent"`
	Logging LogConfig   `yaml:"logging"`
	Web     WebConfig   `yaml:"web"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			WoodMinAmount: 400,
			CityBuildCost: 100,
			Admission:     AdmissionBudget,
			DayLength:     30,
			CycleLength:   40,
		},
		Logging: LogConfig{
			Level:      "info",
			Console:    true,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Web: WebConfig{
			Host: "127.0.0.1",
			Port: 8088,
		},
	}
}

// ConfigManager handles loading and saving of the agent's configuration.
type ConfigManager struct {
	configPath string
	config     *Config
	lock       sync.Mutex
}

// NewConfigManager loads the config at path. A missing file yields the
// defaults; stdin belongs to the game so there is no interactive setup.
func NewConfigManager(path string) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: path,
		config:     DefaultConfig(),
	}

	if _, err := cm.LoadConfig(); err != nil {
		return nil, err
	}
	if err := cm.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cm, nil
}

// Validate checks that the configuration values are usable.
func (cm *ConfigManager) Validate() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	agent := cm.config.Agent
	if agent.CityBuildCost <= 0 {
		return fmt.Errorf("city_build_cost must be positive")
	}
	if agent.WoodMinAmount < 0 {
		return fmt.Errorf("wood_min_amount must not be negative")
	}
	switch agent.Admission {
	case AdmissionBudget, AdmissionPerTile:
	default:
		return fmt.Errorf("unknown admission mode %q", agent.Admission)
	}
	if agent.DayLength <= 0 || agent.CycleLength <= agent.DayLength {
		return fmt.Errorf("day_length must be positive and shorter than cycle_length")
	}
	if cm.config.Web.Enabled && (cm.config.Web.Port <= 0 || cm.config.Web.Port > 65535) {
		return fmt.Errorf("web port %d out of range", cm.config.Web.Port)
	}
	return nil
}

// LoadConfig overlays the YAML file onto the current configuration.
// It reports whether the file existed.
func (cm *ConfigManager) LoadConfig() (bool, error) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	file, err := os.ReadFile(cm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	config := *cm.config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return false, fmt.Errorf("failed to decode YAML from config file: %w", err)
	}
	cm.config = &config
	return true, nil
}

// SaveConfig writes the current configuration to the YAML file.
func (cm *ConfigManager) SaveConfig() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return fmt.Errorf("failed to encode config to YAML: %w", err)
	}
	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to config file: %w", err)
	}
	return nil
}

// GetConfig returns the entire configuration.
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig sets the configuration for testing purposes.
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}
