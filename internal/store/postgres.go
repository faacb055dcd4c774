// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Postgres keeps each collection as a single JSONB row, preserving the
// whole-document read/write contract of Store. It is an alternative backend
// to FileStore, not a relational remodel of the data.
type Postgres struct {
	db     *sql.DB
	log    *logrus.Logger
	tracer trace.Tracer
}

// NewPostgres wraps an open database handle. The caller owns the handle.
func NewPostgres(db *sql.DB, log *logrus.Logger) *Postgres {
	return &Postgres{
		db:     db,
		log:    log,
		tracer: otel.Tracer("storeadmin/store"),
	}
}

// EnsureSchema creates the backing table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collection_documents (
			name       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create collection_documents table: %w", err)
	}
	return nil
}

// Load fetches and decodes the collection document. A missing row or any
// query/decode failure degrades to the empty collection.
func (p *Postgres) Load(ctx context.Context, collection string, out any) {
	ctx, span := p.tracer.Start(ctx, "store.load",
		trace.WithAttributes(attribute.String("collection", collection)),
	)
	defer span.End()

	var data []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT doc FROM collection_documents WHERE name = $1`, collection,
	).Scan(&data)
	if err != nil {
		if err != sql.ErrNoRows {
			p.log.WithError(err).WithField("collection", collection).
				Warn("querying collection document, using empty collection")
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		p.log.WithError(err).WithField("collection", collection).
			Warn("decoding collection document, using empty collection")
	}
}

// Save upserts the collection document in full.
func (p *Postgres) Save(ctx context.Context, collection string, doc any) error {
	ctx, span := p.tracer.Start(ctx, "store.save",
		trace.WithAttributes(attribute.String("collection", collection)),
	)
	defer span.End()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO collection_documents (name, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, collection, data)
	if err != nil {
		return fmt.Errorf("upsert %s document: %w", collection, err)
	}
	return nil
}
