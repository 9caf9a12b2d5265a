package experiment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists runs and their measurements in a SQLite database.
//
// uint64 quantities (capacities, results) are stored as decimal TEXT, since
// SQLite integers are signed 64-bit.
type Store struct {
	db *sql.DB
}

// StoredMetric is one row of the metrics table joined with its measurement.
type StoredMetric struct {
	MeasurementID uuid.UUID
	Index         int
	NumItems      int
	Capacity      uint64
	Algorithm     string
	Metric        Metric
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	config TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS measurements (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL REFERENCES runs(id),
	idx INTEGER NOT NULL,
	num_items INTEGER NOT NULL,
	capacity TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_measurements_run ON measurements(run_id);
CREATE TABLE IF NOT EXISTS metrics (
	measurement_id TEXT NOT NULL REFERENCES measurements(id),
	algorithm TEXT NOT NULL,
	result TEXT,
	error TEXT NOT NULL DEFAULT '',
	duration_ns INTEGER NOT NULL,
	alloc_bytes INTEGER NOT NULL,
	PRIMARY KEY (measurement_id, algorithm)
);
`

// OpenStore opens (creating if needed) the database at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("experiment: create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("experiment: open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("experiment: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun writes a run, its config and all measurements in one transaction.
func (s *Store) SaveRun(ctx context.Context, runID uuid.UUID, cfg Config, ms []Measurement) error {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("experiment: encode config: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("experiment: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, name, config) VALUES (?, ?, ?)`,
		runID.String(), cfg.Name, string(cfgJSON)); err != nil {
		return fmt.Errorf("experiment: insert run: %w", err)
	}
	for _, m := range ms {
		if m.Metrics == nil {
			continue // never measured (cancelled batch)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO measurements (id, run_id, idx, num_items, capacity) VALUES (?, ?, ?, ?, ?)`,
			m.ID.String(), runID.String(), m.Index, m.NumItems, strconv.FormatUint(m.Capacity, 10)); err != nil {
			return fmt.Errorf("experiment: insert measurement %d: %w", m.Index, err)
		}
		for name, metric := range m.Metrics {
			var result sql.NullString
			if metric.OK() {
				result = sql.NullString{String: strconv.FormatUint(*metric.Result, 10), Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO metrics (measurement_id, algorithm, result, error, duration_ns, alloc_bytes) VALUES (?, ?, ?, ?, ?, ?)`,
				m.ID.String(), name, result, metric.Err, metric.Duration.Nanoseconds(), int64(metric.AllocBytes)); err != nil {
				return fmt.Errorf("experiment: insert metric %s/%d: %w", name, m.Index, err)
			}
		}
	}

	return tx.Commit()
}

// LoadMetrics returns every metric of a run ordered by instance index and
// algorithm name. It returns ErrRunNotFound for an unknown run.
func (s *Store) LoadMetrics(ctx context.Context, runID uuid.UUID) ([]StoredMetric, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID.String()).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("experiment: lookup run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.idx, m.num_items, m.capacity, x.algorithm, x.result, x.error, x.duration_ns, x.alloc_bytes
		FROM measurements m JOIN metrics x ON x.measurement_id = m.id
		WHERE m.run_id = ?
		ORDER BY m.idx, x.algorithm`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("experiment: query metrics: %w", err)
	}
	defer rows.Close()

	var out []StoredMetric
	for rows.Next() {
		var (
			sm         StoredMetric
			id         string
			capacity   string
			result     sql.NullString
			durationNS int64
			alloc      int64
		)
		if err := rows.Scan(&id, &sm.Index, &sm.NumItems, &capacity, &sm.Algorithm, &result, &sm.Metric.Err, &durationNS, &alloc); err != nil {
			return nil, fmt.Errorf("experiment: scan metric: %w", err)
		}
		if sm.MeasurementID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("experiment: measurement id %q: %w", id, err)
		}
		if sm.Capacity, err = strconv.ParseUint(capacity, 10, 64); err != nil {
			return nil, fmt.Errorf("experiment: capacity %q: %w", capacity, err)
		}
		if result.Valid {
			v, err := strconv.ParseUint(result.String, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("experiment: result %q: %w", result.String, err)
			}
			sm.Metric.Result = &v
		}
		sm.Metric.Duration = time.Duration(durationNS)
		sm.Metric.AllocBytes = uint64(alloc)
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("experiment: iterate metrics: %w", err)
	}

	return out, nil
}
