package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"CotSignal/internal/domain/models"
	applogger "CotSignal/pkg/logger"
	"CotSignal/pkg/util"
)

// Fixed source column labels for the three positioning indices.
const (
	colTime        = "time"
	colClose       = "close"
	colCommercials = "Commercials Index"
	colLargeSpecs  = "Large Speculators Index"
	colSmallSpecs  = "Small Speculators Index"
)

// CSVSeriesStore loads per-commodity daily series from CSV files named
// <dir>/<commodity>.csv. Rows with unparseable dates are dropped; rows
// before the configured start date are filtered at load.
type CSVSeriesStore struct {
	dir       string
	startDate time.Time
	l         *applogger.Logger
}

func NewCSVSeriesStore(dir string, startDate time.Time) *CSVSeriesStore {
	return &CSVSeriesStore{dir: dir, startDate: startDate}
}

// SetLogger injects a structured logger.
func (s *CSVSeriesStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CSVSeriesStore) Series(ctx context.Context, commodity models.Commodity) ([]models.DailyRecord, error) {
	start := time.Now()
	path := filepath.Join(s.dir, commodity.String()+".csv")

	f, err := os.Open(path)
	if err != nil {
		if s.l != nil {
			s.l.Error("csv series open error",
				applogger.String("commodity", commodity.String()),
				applogger.String("path", path),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[colTime]; !ok {
		return nil, fmt.Errorf("series %s: missing %q column", path, colTime)
	}

	var records []models.DailyRecord
	dropped := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := r.Read()
		if err != nil {
			break
		}
		date, ok := util.ParseDate(field(row, cols, colTime))
		if !ok {
			dropped++
			continue
		}
		if !s.startDate.IsZero() && date.Before(s.startDate) {
			continue
		}
		records = append(records, models.DailyRecord{
			Date:        util.Day(date),
			Close:       parseOptional(field(row, cols, colClose)),
			Commercials: parseOptional(field(row, cols, colCommercials)),
			LargeSpecs:  parseOptional(field(row, cols, colLargeSpecs)),
			SmallSpecs:  parseOptional(field(row, cols, colSmallSpecs)),
		})
	}

	if s.l != nil {
		s.l.Info("csv series loaded",
			applogger.String("commodity", commodity.String()),
			applogger.Int("rows", len(records)),
			applogger.Int("dropped", dropped),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return records, nil
}

func (s *CSVSeriesStore) Health(ctx context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	return nil
}

func (s *CSVSeriesStore) Close() error { return nil }

func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseOptional returns nil for empty or non-numeric cells. Absent
// values stay absent; they are not coerced here.
func parseOptional(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
