// Package config holds the run configuration for a sanitization pass and
// the factory that turns it into a concrete action. All validation happens
// here, before any traversal: a bad configuration never leaves a graph
// partially sanitized.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/match"
	"github.com/aretw0/datashield/pkg/sanitize"
)

// Mode selects the sanitization strategy for a run.
type Mode string

const (
	// ModePrefix removes parameters whose name starts with the input.
	ModePrefix Mode = "prefix"
	// ModePattern removes parameters whose name matches a glob or regex.
	ModePattern Mode = "pattern"
	// ModeAnonymization masks email addresses found in parameter values.
	// The parameter input is ignored.
	ModeAnonymization Mode = "anonymization"
)

// Display returns the human readable mode name used in run summaries.
func (m Mode) Display() string {
	switch m {
	case ModePrefix:
		return "Prefix Matching"
	case ModePattern:
		return "Pattern Matching"
	case ModeAnonymization:
		return "Anonymization"
	default:
		return string(m)
	}
}

// Config is the immutable configuration for one run.
type Config struct {
	// Mode selects the sanitization strategy.
	Mode Mode `yaml:"mode" json:"mode" mapstructure:"mode"`

	// ParameterInput is the prefix or pattern to match. Use '*' and '?' for
	// globs; wrap in slashes like /^foo_/ for regex (trailing 'i' forces
	// case-insensitive). Ignored in anonymization mode.
	ParameterInput string `yaml:"parameter_input" json:"parameter_input" mapstructure:"parameter_input"`

	// StrictMode makes matching case-sensitive.
	StrictMode bool `yaml:"strict_mode" json:"strict_mode" mapstructure:"strict_mode"`
}

// Load reads a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the mode/input combination. Pattern mode also compiles
// the pattern so malformed regexes fail before the pass starts.
func (c Config) Validate() error {
	switch c.Mode {
	case ModePrefix:
		if c.ParameterInput == "" {
			return fmt.Errorf("%w: prefix mode requires a parameter prefix", domain.ErrEmptyMatchValue)
		}
	case ModePattern:
		if c.ParameterInput == "" {
			return fmt.Errorf("%w: pattern mode requires a parameter pattern", domain.ErrEmptyMatchValue)
		}
		if _, err := match.NewPatternChecker(c.ParameterInput, c.StrictMode); err != nil {
			return err
		}
	case ModeAnonymization:
		// Emails are detected in values; no input needed.
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, c.Mode)
	}
	return nil
}

// BuildAction validates the configuration and constructs the action for
// one run. Each call returns a fresh action with an empty ledger.
func (c Config) BuildAction() (sanitize.Action, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Mode {
	case ModePrefix:
		return sanitize.NewRemovalAction(match.NewPrefixMatcher(c.ParameterInput, c.StrictMode)), nil
	case ModePattern:
		matcher, err := match.NewPatternMatcher(c.ParameterInput, c.StrictMode)
		if err != nil {
			return nil, err
		}
		return sanitize.NewRemovalAction(matcher), nil
	default:
		return sanitize.NewAnonymizationAction(), nil
	}
}

// SuccessMessage builds the run summary used when a pass completes.
func (c Config) SuccessMessage() string {
	message := fmt.Sprintf("Parameters processed successfully with shield function %s", c.Mode.Display())
	if c.StrictMode {
		message += " running in strict mode"
	}
	return message + "."
}
