// Package store provides a SQLite-backed cache of computed cost projections.
// The cache is purely an optimization: projection is deterministic and
// side-effect-free, so callers fall back to recomputation on any cache miss
// or error.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/marciooo/nido/internal/costs"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed projection caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Fingerprint derives a stable cache key from every input that affects a
// projection: the tuition table, the bracket multipliers in order, the span,
// and the step.
func Fingerprint(table costs.TuitionTable, multipliers costs.MultiplierSet, span costs.Span, step int) string {
	h := fnv.New64a()
	for _, band := range costs.Bands() {
		fmt.Fprintf(h, "%s=%d;", band, table.Annual(band))
	}
	for _, bf := range multipliers.Brackets {
		fmt.Fprintf(h, "%s=%g;", bf.Name, bf.Factor)
	}
	fmt.Fprintf(h, "span=%d-%d;step=%d", span.Min, span.Max, step)
	return fmt.Sprintf("%016x", h.Sum64())
}

// GetProjection looks up a cached projection by fingerprint. The second
// return value is false on a miss.
func (c *Cache) GetProjection(fingerprint string) (costs.MonthlySeries, costs.CumulativeSeries, bool, error) {
	var monthlyJSON, cumulativeJSON string
	err := c.db.QueryRow(
		"SELECT monthly_json, cumulative_json FROM projections WHERE fingerprint = ?",
		fingerprint,
	).Scan(&monthlyJSON, &cumulativeJSON)
	if err == sql.ErrNoRows {
		return costs.MonthlySeries{}, costs.CumulativeSeries{}, false, nil
	}
	if err != nil {
		return costs.MonthlySeries{}, costs.CumulativeSeries{}, false, err
	}

	var monthly costs.MonthlySeries
	if err := json.Unmarshal([]byte(monthlyJSON), &monthly); err != nil {
		return costs.MonthlySeries{}, costs.CumulativeSeries{}, false, fmt.Errorf("decoding cached monthly series: %w", err)
	}
	var cumulative costs.CumulativeSeries
	if err := json.Unmarshal([]byte(cumulativeJSON), &cumulative); err != nil {
		return costs.MonthlySeries{}, costs.CumulativeSeries{}, false, fmt.Errorf("decoding cached cumulative series: %w", err)
	}

	return monthly, cumulative, true, nil
}

// SaveProjection stores a computed projection under its fingerprint.
func (c *Cache) SaveProjection(
	fingerprint, region, careType string,
	monthly costs.MonthlySeries,
	cumulative costs.CumulativeSeries,
) error {
	monthlyJSON, err := json.Marshal(monthly)
	if err != nil {
		return fmt.Errorf("encoding monthly series: %w", err)
	}
	cumulativeJSON, err := json.Marshal(cumulative)
	if err != nil {
		return fmt.Errorf("encoding cumulative series: %w", err)
	}

	_, err = c.db.Exec(`INSERT OR REPLACE INTO projections
		(fingerprint, region, care_type, monthly_json, cumulative_json, computed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		fingerprint, region, careType, string(monthlyJSON), string(cumulativeJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Clear drops all cached projections.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM projections")
	return err
}
