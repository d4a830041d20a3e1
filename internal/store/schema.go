package store

// schemaSQL creates the local store tables. tokens is the persistent
// key-value home of the auth token pair; responses caches normalized GET
// bodies keyed by endpoint plus encoded query.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS tokens (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS responses (
	cache_key  TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_responses_fetched_at ON responses(fetched_at);
`
