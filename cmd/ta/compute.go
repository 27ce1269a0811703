package main

import (
	"fmt"

	"github.com/quantstream/ta/config"
	"github.com/quantstream/ta/dataset"
	"github.com/quantstream/ta/indicators"
	"github.com/quantstream/ta/pricing"
	"github.com/spf13/cobra"
)

var computeFlags struct {
	data       string
	configPath string

	kind         string
	period       int
	kPeriod      int
	dPeriod      int
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
	k            float64
	emaPeriod    int
	atrPeriod    int
	multiplier   float64
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute indicator series over a CSV candle file",
	Long: `Compute reads candles from a CSV file (timestamp,open,high,low,close,volume)
and prints the full series of each configured indicator, one row per output
step, aligned to the candle timestamps.

Indicators come either from a config file (--config) or from the
--indicator flag with its parameter flags.`,
	RunE: runCompute,
}

func init() {
	f := computeCmd.Flags()
	f.StringVar(&computeFlags.data, "data", "", "candle CSV file (required)")
	f.StringVar(&computeFlags.configPath, "config", "", "indicator-set config file (YAML or JSON)")

	f.StringVar(&computeFlags.kind, "indicator", "", "single indicator kind (see 'ta list')")
	f.IntVar(&computeFlags.period, "period", 14, "period for single-period indicators")
	f.IntVar(&computeFlags.kPeriod, "k-period", 14, "stochastic %K period")
	f.IntVar(&computeFlags.dPeriod, "d-period", 3, "stochastic %D period")
	f.IntVar(&computeFlags.fastPeriod, "fast-period", 12, "MACD fast EMA period")
	f.IntVar(&computeFlags.slowPeriod, "slow-period", 26, "MACD slow EMA period")
	f.IntVar(&computeFlags.signalPeriod, "signal-period", 9, "MACD signal EMA period")
	f.Float64Var(&computeFlags.k, "k", 2, "Bollinger standard deviation multiplier")
	f.IntVar(&computeFlags.emaPeriod, "ema-period", 20, "Keltner EMA period")
	f.IntVar(&computeFlags.atrPeriod, "atr-period", 10, "Keltner ATR period")
	f.Float64Var(&computeFlags.multiplier, "multiplier", 2, "Keltner ATR multiplier")

	_ = computeCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadIndicatorSet()
	if err != nil {
		return err
	}

	candles, err := dataset.LoadCSV(computeFlags.data)
	if err != nil {
		return err
	}
	log.WithField("candles", len(candles)).Debug("loaded candle file")

	for _, def := range cfg.Indicators {
		name, headers, rows, err := computeSeries(def, candles)
		if err != nil {
			log.WithError(err).WithField("indicator", name).Error("calculation failed")
			return err
		}

		fmt.Printf("# %s\n", name)
		fmt.Printf("timestamp")
		for _, h := range headers {
			fmt.Printf("\t%s", h)
		}
		fmt.Println()

		offset := len(candles) - len(rows)
		for i, row := range rows {
			fmt.Printf("%d", candles[offset+i].Timestamp)
			for _, v := range row {
				fmt.Printf("\t%.6f", v)
			}
			fmt.Println()
		}
	}
	return nil
}

func loadIndicatorSet() (*config.Config, error) {
	if computeFlags.configPath != "" {
		return config.LoadFromFile(computeFlags.configPath)
	}
	if computeFlags.kind == "" {
		return nil, fmt.Errorf("either --config or --indicator is required")
	}

	def := config.Indicator{
		Kind:         computeFlags.kind,
		Period:       computeFlags.period,
		KPeriod:      computeFlags.kPeriod,
		DPeriod:      computeFlags.dPeriod,
		FastPeriod:   computeFlags.fastPeriod,
		SlowPeriod:   computeFlags.slowPeriod,
		SignalPeriod: computeFlags.signalPeriod,
		K:            computeFlags.k,
		EMAPeriod:    computeFlags.emaPeriod,
		ATRPeriod:    computeFlags.atrPeriod,
		Multiplier:   computeFlags.multiplier,
	}
	cfg := &config.Config{Indicators: []config.Indicator{def}}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeSeries builds one indicator from its config definition and runs it
// over the candle history, flattening record outputs into value columns.
func computeSeries(def config.Indicator, candles []pricing.Candle) (string, []string, [][]float64, error) {
	switch def.Kind {
	case "sma":
		ind, err := indicators.NewSMA[pricing.Candle](def.Period)
		return scalarSeries(def, ind, err, candles)
	case "ema":
		ind, err := indicators.NewEMA[pricing.Candle](def.Period)
		return scalarSeries(def, ind, err, candles)
	case "stddev":
		ind, err := indicators.NewStdDev[pricing.Candle](def.Period)
		return scalarSeries(def, ind, err, candles)
	case "rsi":
		ind, err := indicators.NewRSI[pricing.Candle](def.Period)
		return scalarSeries(def, ind, err, candles)
	case "williams_r":
		ind, err := indicators.NewWilliamsR(def.Period)
		return scalarSeries(def, ind, err, candles)
	case "atr":
		ind, err := indicators.NewATR(def.Period)
		return scalarSeries(def, ind, err, candles)
	case "obv":
		return scalarSeries(def, indicators.NewOBV(), nil, candles)
	case "adl":
		return scalarSeries(def, indicators.NewADL(), nil, candles)
	case "cmf":
		ind, err := indicators.NewCMF(def.Period)
		return scalarSeries(def, ind, err, candles)
	case "vroc":
		ind, err := indicators.NewVROC(def.Period)
		return scalarSeries(def, ind, err, candles)
	case "stochastic":
		ind, err := indicators.NewStochastic(def.KPeriod, def.DPeriod)
		return recordSeries(def, ind, err, candles,
			[]string{"k", "d"},
			func(r indicators.StochasticResult) []float64 { return []float64{r.K, r.D} })
	case "macd":
		ind, err := indicators.NewMACD[pricing.Candle](def.FastPeriod, def.SlowPeriod, def.SignalPeriod)
		return recordSeries(def, ind, err, candles,
			[]string{"macd", "signal", "histogram"},
			func(r indicators.MACDResult) []float64 { return []float64{r.MACD, r.Signal, r.Histogram} })
	case "bollinger":
		ind, err := indicators.NewBollingerBands[pricing.Candle](def.Period, def.K)
		return recordSeries(def, ind, err, candles,
			[]string{"middle", "upper", "lower", "bandwidth"},
			func(r indicators.BandsResult) []float64 { return []float64{r.Middle, r.Upper, r.Lower, r.Bandwidth} })
	case "keltner":
		ind, err := indicators.NewKeltnerChannels(def.EMAPeriod, def.ATRPeriod, def.Multiplier)
		return recordSeries(def, ind, err, candles,
			[]string{"middle", "upper", "lower", "bandwidth"},
			func(r indicators.BandsResult) []float64 { return []float64{r.Middle, r.Upper, r.Lower, r.Bandwidth} })
	}
	return def.Kind, nil, nil, fmt.Errorf("unknown indicator kind %q", def.Kind)
}

type scalarIndicator interface {
	indicators.Indicator[pricing.Candle, float64]
	fmt.Stringer
}

func scalarSeries(def config.Indicator, ind scalarIndicator, err error, candles []pricing.Candle) (string, []string, [][]float64, error) {
	if err != nil {
		return def.Kind, nil, nil, err
	}
	values, err := ind.Calculate(candles)
	if err != nil {
		return displayName(def, ind), nil, nil, err
	}
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return displayName(def, ind), []string{"value"}, rows, nil
}

type recordIndicator[O any] interface {
	indicators.Indicator[pricing.Candle, O]
	fmt.Stringer
}

func recordSeries[O any](def config.Indicator, ind recordIndicator[O], err error, candles []pricing.Candle, headers []string, fields func(O) []float64) (string, []string, [][]float64, error) {
	if err != nil {
		return def.Kind, nil, nil, err
	}
	values, err := ind.Calculate(candles)
	if err != nil {
		return displayName(def, ind), nil, nil, err
	}
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = fields(v)
	}
	return displayName(def, ind), headers, rows, nil
}

func displayName(def config.Indicator, ind fmt.Stringer) string {
	if def.Name != "" {
		return def.Name
	}
	return ind.String()
}
