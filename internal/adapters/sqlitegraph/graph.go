// Package sqlitegraph implements a persistent property graph target on SQLite.
package sqlitegraph

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.grampus.dev/grampus/internal/core/domain"
	"go.grampus.dev/grampus/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

var _ ports.Target = (*Store)(nil)

// Store is a graph target backed by a SQLite file. Property values are
// stored JSON-encoded so the original YAML types round-trip.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the graph store at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, path: path}, nil
}

// VertexByID returns the vertex with the given id, or nil, nil when absent.
func (s *Store) VertexByID(ctx context.Context, id string) (ports.Vertex, error) {
	var found string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM vertices WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "vertex_id", id)
	}
	return &Vertex{store: s, id: found}, nil
}

// AddVertex creates a vertex row for id. Insertion is idempotent on the
// primary key, matching the in-memory target.
func (s *Store) AddVertex(ctx context.Context, id string) (ports.Vertex, error) {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO vertices (id) VALUES (?)`, id)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "vertex_id", id)
	}
	return &Vertex{store: s, id: id}, nil
}

// Counts reports the number of vertex and edge rows.
func (s *Store) Counts(ctx context.Context) (int, int, error) {
	var vertices, edges int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vertices`).Scan(&vertices); err != nil {
		return 0, 0, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM edges`).Scan(&edges); err != nil {
		return 0, 0, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return vertices, edges, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Vertex is a handle to a vertex row.
type Vertex struct {
	store *Store
	id    string
}

// ID returns the vertex identifier.
func (v *Vertex) ID() string { return v.id }

// AddEdge inserts a new edge row from this vertex to target.
func (v *Vertex) AddEdge(ctx context.Context, label string, target ports.Vertex) (ports.Edge, error) {
	res, err := v.store.db.ExecContext(ctx,
		`INSERT INTO edges (source, label, target) VALUES (?, ?, ?)`,
		v.id, label, target.ID(),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "label", label)
	}

	edgeID, err := res.LastInsertId()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return &Edge{store: v.store, id: edgeID, label: label}, nil
}

// SetProperty upserts a vertex property.
func (v *Vertex) SetProperty(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	_, err = v.store.db.ExecContext(ctx, `
INSERT INTO vertex_props (vertex_id, key, value) VALUES (?, ?, ?)
ON CONFLICT (vertex_id, key) DO UPDATE SET value = excluded.value`,
		v.id, key, string(encoded),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "vertex_id", v.id)
	}
	return nil
}

// Edge is a handle to an edge row.
type Edge struct {
	store *Store
	id    int64
	label string
}

// Label returns the resolved label the edge was created with.
func (e *Edge) Label() string { return e.label }

// SetProperty upserts an edge property.
func (e *Edge) SetProperty(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	_, err = e.store.db.ExecContext(ctx, `
INSERT INTO edge_props (edge_id, key, value) VALUES (?, ?, ?)
ON CONFLICT (edge_id, key) DO UPDATE SET value = excluded.value`,
		e.id, key, string(encoded),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "edge_id", e.id)
	}
	return nil
}
