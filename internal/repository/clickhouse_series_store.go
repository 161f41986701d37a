package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"CotSignal/internal/domain/models"
	pkgch "CotSignal/pkg/clickhouse"
	applogger "CotSignal/pkg/logger"
)

const seriesTable = "cotsignal.daily_records"

// SchemaStatements returns the idempotent DDL for the series table.
func SchemaStatements() []string {
	return []string{
		`CREATE DATABASE IF NOT EXISTS cotsignal`,
		`CREATE TABLE IF NOT EXISTS ` + seriesTable + ` (
            day Date,
            commodity LowCardinality(String),
            close Nullable(Float64),
            commercials_idx Nullable(Float64),
            large_specs_idx Nullable(Float64),
            small_specs_idx Nullable(Float64)
        ) ENGINE = ReplacingMergeTree
        ORDER BY (commodity, day)`,
	}
}

// CHSeriesStore reads per-commodity daily series from ClickHouse.
// It owns the client and closes it with Close.
type CHSeriesStore struct {
	client *pkgch.Client
	db     *sql.DB
	l      *applogger.Logger
}

func NewCHSeriesStore(ch *pkgch.Client) *CHSeriesStore {
	return &CHSeriesStore{client: ch, db: ch.DB()}
}

// SetLogger injects a structured logger.
func (s *CHSeriesStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHSeriesStore) Series(ctx context.Context, commodity models.Commodity) ([]models.DailyRecord, error) {
	start := time.Now()
	const qtpl = `
        SELECT day, close, commercials_idx, large_specs_idx, small_specs_idx
        FROM %s FINAL
        WHERE commodity = ?
        ORDER BY day ASC
    `
	q := fmt.Sprintf(qtpl, seriesTable)
	rows, err := s.db.QueryContext(ctx, q, commodity.String())
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse series query error",
				applogger.String("commodity", commodity.String()),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("get series: %w", err)
	}
	defer rows.Close()

	out := make([]models.DailyRecord, 0, 1024)
	for rows.Next() {
		var day time.Time
		var close, comm, large, small sql.NullFloat64
		if err := rows.Scan(&day, &close, &comm, &large, &small); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse series scan error",
					applogger.String("commodity", commodity.String()),
					applogger.Error(err),
				)
			}
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, models.DailyRecord{
			Date:        day.UTC(),
			Close:       nullable(close),
			Commercials: nullable(comm),
			LargeSpecs:  nullable(large),
			SmallSpecs:  nullable(small),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse series ok",
			applogger.String("commodity", commodity.String()),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

// InsertRecords batch-writes daily records for one commodity.
// Used by the ingest command, not the serving path.
func (s *CHSeriesStore) InsertRecords(ctx context.Context, commodity models.Commodity, records []models.DailyRecord) error {
	if len(records) == 0 {
		return nil
	}
	const chunkSize = 2000
	for startIdx := 0; startIdx < len(records); startIdx += chunkSize {
		end := startIdx + chunkSize
		if end > len(records) {
			end = len(records)
		}

		values := make([]string, 0, end-startIdx)
		args := make([]interface{}, 0, (end-startIdx)*6)
		for _, r := range records[startIdx:end] {
			values = append(values, "(?, ?, ?, ?, ?, ?)")
			args = append(args,
				r.Date,
				commodity.String(),
				deref(r.Close),
				deref(r.Commercials),
				deref(r.LargeSpecs),
				deref(r.SmallSpecs),
			)
		}
		q := fmt.Sprintf("INSERT INTO %s (day, commodity, close, commercials_idx, large_specs_idx, small_specs_idx) VALUES %s",
			seriesTable, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert records: %w", err)
		}
	}
	return nil
}

func (s *CHSeriesStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *CHSeriesStore) Close() error {
	return s.client.Close()
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
