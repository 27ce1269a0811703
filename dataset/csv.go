// Package dataset loads candle series from files for the CLI. The
// indicator engine itself performs no I/O; this is a collaborator that
// builds the in-memory sample slices the engine consumes.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quantstream/ta/pricing"
)

// LoadCSV reads candles from a delimited text file with columns
// timestamp,open,high,low,close,volume. Comma and semicolon separators are
// both accepted; a leading header row and blank lines are skipped.
func LoadCSV(path string) ([]pricing.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candle file: %w", err)
	}
	defer f.Close()

	var candles []pricing.Candle

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		sep := ","
		if strings.Contains(line, ";") {
			sep = ";"
		}
		parts := strings.Split(line, sep)
		if len(parts) < 6 {
			return nil, fmt.Errorf("line %d: expected 6 columns, got %d", lineNo, len(parts))
		}

		c, err := parseCandle(parts)
		if err != nil {
			// Tolerate one header row at the top of the file
			if len(candles) == 0 && lineNo == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		candles = append(candles, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read candle file: %w", err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no candles in %s", path)
	}
	return candles, nil
}

func parseCandle(parts []string) (pricing.Candle, error) {
	ts, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return pricing.Candle{}, fmt.Errorf("bad timestamp %q", parts[0])
	}

	fields := make([]float64, 5)
	for i, p := range parts[1:6] {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return pricing.Candle{}, fmt.Errorf("bad number %q", p)
		}
		fields[i] = v
	}

	return pricing.Candle{
		Timestamp: ts,
		Open:      fields[0],
		High:      fields[1],
		Low:       fields[2],
		Close:     fields[3],
		Volume:    fields[4],
	}, nil
}
