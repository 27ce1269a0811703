// Package config loads and validates indicator-set configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a named set of indicator definitions.
type Config struct {
	Indicators []Indicator `json:"indicators" yaml:"indicators"`
}

// Indicator describes one indicator to build. Only the fields relevant to
// the kind need to be set.
type Indicator struct {
	// Name is an optional display label; defaults to the indicator's own
	// String() when empty.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Kind selects the algorithm: sma, ema, stddev, rsi, stochastic,
	// williams_r, atr, obv, adl, cmf, vroc, macd, bollinger, keltner.
	Kind string `json:"kind" yaml:"kind"`

	Period int `json:"period,omitempty" yaml:"period,omitempty"`

	// Stochastic
	KPeriod int `json:"k_period,omitempty" yaml:"k_period,omitempty"`
	DPeriod int `json:"d_period,omitempty" yaml:"d_period,omitempty"`

	// MACD
	FastPeriod   int `json:"fast_period,omitempty" yaml:"fast_period,omitempty"`
	SlowPeriod   int `json:"slow_period,omitempty" yaml:"slow_period,omitempty"`
	SignalPeriod int `json:"signal_period,omitempty" yaml:"signal_period,omitempty"`

	// Bollinger standard deviation multiplier
	K float64 `json:"k,omitempty" yaml:"k,omitempty"`

	// Keltner
	EMAPeriod  int     `json:"ema_period,omitempty" yaml:"ema_period,omitempty"`
	ATRPeriod  int     `json:"atr_period,omitempty" yaml:"atr_period,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
}

// Kinds lists the supported indicator kinds.
var Kinds = []string{
	"sma", "ema", "stddev", "rsi", "stochastic", "williams_r",
	"atr", "obv", "adl", "cmf", "vroc", "macd", "bollinger", "keltner",
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks every indicator definition.
func (c *Config) Validate() error {
	if len(c.Indicators) == 0 {
		return fmt.Errorf("at least one indicator is required")
	}
	for i, ind := range c.Indicators {
		if err := ind.Validate(); err != nil {
			return fmt.Errorf("indicators[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single indicator definition. Construction re-validates
// parameters; this catches mistakes at config-load time with the field
// names the user wrote.
func (ind Indicator) Validate() error {
	switch ind.Kind {
	case "sma", "ema", "stddev", "rsi", "williams_r", "atr", "cmf", "vroc":
		if ind.Period < 1 {
			return fmt.Errorf("%s requires period >= 1", ind.Kind)
		}
	case "obv", "adl":
		// No parameters
	case "stochastic":
		if ind.KPeriod < 1 || ind.DPeriod < 1 {
			return fmt.Errorf("stochastic requires k_period and d_period >= 1")
		}
	case "macd":
		if ind.FastPeriod < 1 || ind.SlowPeriod < 1 || ind.SignalPeriod < 1 {
			return fmt.Errorf("macd requires fast_period, slow_period and signal_period >= 1")
		}
		if ind.FastPeriod >= ind.SlowPeriod {
			return fmt.Errorf("macd requires fast_period < slow_period")
		}
	case "bollinger":
		if ind.Period < 1 {
			return fmt.Errorf("bollinger requires period >= 1")
		}
		if ind.K <= 0 {
			return fmt.Errorf("bollinger requires k > 0")
		}
	case "keltner":
		if ind.EMAPeriod < 1 || ind.ATRPeriod < 1 {
			return fmt.Errorf("keltner requires ema_period and atr_period >= 1")
		}
		if ind.Multiplier <= 0 {
			return fmt.Errorf("keltner requires multiplier > 0")
		}
	case "":
		return fmt.Errorf("kind is required (one of %s)", strings.Join(Kinds, ", "))
	default:
		return fmt.Errorf("unknown kind %q (one of %s)", ind.Kind, strings.Join(Kinds, ", "))
	}
	return nil
}

// Default returns a configuration with a common indicator set.
func Default() *Config {
	return &Config{
		Indicators: []Indicator{
			{Kind: "sma", Period: 20},
			{Kind: "ema", Period: 20},
			{Kind: "rsi", Period: 14},
			{Kind: "macd", FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9},
			{Kind: "bollinger", Period: 20, K: 2},
			{Kind: "atr", Period: 14},
		},
	}
}
