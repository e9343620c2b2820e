package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable session settings. The zero Seed means "pick one
// from the clock".
type Config struct {
	DropInterval time.Duration `yaml:"drop_interval"`
	Kicks        string        `yaml:"kicks"`
	Seed         uint64        `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		DropInterval: DefaultDropInterval,
		Kicks:        "alternating",
	}
}

// LoadConfig reads a YAML file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DropInterval <= 0 {
		return fmt.Errorf("%w: drop_interval must be positive, got %s", ErrInvalidConfig, c.DropInterval)
	}
	if _, err := KickPolicyByName(c.Kicks); err != nil {
		return err
	}
	return nil
}

// Options converts c into session options. A zero Seed leaves the session to
// seed itself from the clock.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	kicks, _ := KickPolicyByName(c.Kicks)

	opts := []Option{
		WithDropInterval(c.DropInterval),
		WithKickPolicy(kicks),
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return opts, nil
}
