package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projections (
    fingerprint      TEXT PRIMARY KEY,
    region           TEXT NOT NULL,
    care_type        TEXT NOT NULL,
    monthly_json     TEXT NOT NULL,
    cumulative_json  TEXT NOT NULL,
    computed_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projections_region ON projections(region);
`
