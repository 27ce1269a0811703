package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indicators.yaml")
	content := `indicators:
  - kind: sma
    period: 20
  - kind: macd
    fast_period: 12
    slow_period: 26
    signal_period: 9
  - name: vol-bands
    kind: bollinger
    period: 20
    k: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Indicators, 3)

	assert.Equal(t, "sma", cfg.Indicators[0].Kind)
	assert.Equal(t, 20, cfg.Indicators[0].Period)
	assert.Equal(t, 26, cfg.Indicators[1].SlowPeriod)
	assert.Equal(t, "vol-bands", cfg.Indicators[2].Name)
	assert.Equal(t, 2.0, cfg.Indicators[2].K)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indicators.json")
	content := `{"indicators": [{"kind": "rsi", "period": 14}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Indicators, 1)
	assert.Equal(t, "rsi", cfg.Indicators[0].Kind)
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indicators:\n  - kind: sma\n    period: 0\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.yaml")

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Indicators, loaded.Indicators)
}

func TestIndicatorValidate(t *testing.T) {
	tests := []struct {
		name    string
		ind     Indicator
		wantErr bool
	}{
		{"valid sma", Indicator{Kind: "sma", Period: 10}, false},
		{"sma missing period", Indicator{Kind: "sma"}, true},
		{"obv needs nothing", Indicator{Kind: "obv"}, false},
		{"stochastic", Indicator{Kind: "stochastic", KPeriod: 14, DPeriod: 3}, false},
		{"stochastic missing d", Indicator{Kind: "stochastic", KPeriod: 14}, true},
		{"macd fast >= slow", Indicator{Kind: "macd", FastPeriod: 26, SlowPeriod: 12, SignalPeriod: 9}, true},
		{"bollinger zero k", Indicator{Kind: "bollinger", Period: 20}, true},
		{"keltner", Indicator{Kind: "keltner", EMAPeriod: 20, ATRPeriod: 10, Multiplier: 2}, false},
		{"keltner bad multiplier", Indicator{Kind: "keltner", EMAPeriod: 20, ATRPeriod: 10}, true},
		{"unknown kind", Indicator{Kind: "vwap", Period: 10}, true},
		{"empty kind", Indicator{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ind.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
