package sqlitegraph

import (
	"database/sql"

	"go.grampus.dev/grampus/internal/core/domain"
	"go.trai.ch/zerr"
)

// ensureSchema creates the graph tables. Edges get their own rowid so that
// duplicate (source, label, target) triples remain distinct rows.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS vertices (
  id TEXT PRIMARY KEY
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS vertex_props (
  vertex_id TEXT NOT NULL REFERENCES vertices(id),
  key       TEXT NOT NULL,
  value     TEXT NOT NULL,
  PRIMARY KEY (vertex_id, key)
);

CREATE TABLE IF NOT EXISTS edges (
  id     INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL REFERENCES vertices(id),
  label  TEXT NOT NULL,
  target TEXT NOT NULL REFERENCES vertices(id)
);
CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source);

CREATE TABLE IF NOT EXISTS edge_props (
  edge_id INTEGER NOT NULL REFERENCES edges(id),
  key     TEXT NOT NULL,
  value   TEXT NOT NULL,
  PRIMARY KEY (edge_id, key)
);
`)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreOpenFailed.Error())
	}
	return nil
}
