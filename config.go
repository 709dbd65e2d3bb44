package micro

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTabStop    = 8
	defaultQuitTimes  = 3
	defaultMsgTimeout = 5 * time.Second
	statusMsgLen      = 80
)

// Config holds the user tunable editor settings. MessageSeconds is how long
// a status message stays visible.
type Config struct {
	TabStop        int    `yaml:"tab_stop"`
	QuitTimes      int    `yaml:"quit_times"`
	MessageSeconds int    `yaml:"message_seconds"`
	Welcome        string `yaml:"welcome"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		TabStop:        defaultTabStop,
		QuitTimes:      defaultQuitTimes,
		MessageSeconds: int(defaultMsgTimeout / time.Second),
		Welcome:        "Micro editor -- version " + Version,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys that are not
// present keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.TabStop < 1 {
		return fmt.Errorf("tab_stop must be at least 1, got %d", c.TabStop)
	}
	if c.QuitTimes < 1 {
		return fmt.Errorf("quit_times must be at least 1, got %d", c.QuitTimes)
	}
	if c.MessageSeconds < 1 {
		return fmt.Errorf("message_seconds must be at least 1, got %d", c.MessageSeconds)
	}
	return nil
}

func (c Config) messageTimeout() time.Duration {
	return time.Duration(c.MessageSeconds) * time.Second
}
