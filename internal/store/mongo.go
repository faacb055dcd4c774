// internal/store/mongo.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Mongo keeps each collection as a single document in one Mongo collection,
// keyed by collection name. The payload is stored as JSON text so the wire
// shape stays identical to the file backend.
type Mongo struct {
	coll   *mongo.Collection
	log    *logrus.Logger
	tracer trace.Tracer
}

// NewMongo wraps a connected client. The caller owns the client lifecycle.
func NewMongo(client *mongo.Client, database string, log *logrus.Logger) *Mongo {
	return &Mongo{
		coll:   client.Database(database).Collection("collection_documents"),
		log:    log,
		tracer: otel.Tracer("storeadmin/store"),
	}
}

type mongoDocument struct {
	Name string `bson:"_id"`
	Doc  string `bson:"doc"`
}

// Load fetches and decodes the collection document. A missing document or any
// driver/decode failure degrades to the empty collection.
func (m *Mongo) Load(ctx context.Context, collection string, out any) {
	ctx, span := m.tracer.Start(ctx, "store.load",
		trace.WithAttributes(attribute.String("collection", collection)),
	)
	defer span.End()

	var doc mongoDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			m.log.WithError(err).WithField("collection", collection).
				Warn("fetching collection document, using empty collection")
		}
		return
	}
	if err := json.Unmarshal([]byte(doc.Doc), out); err != nil {
		m.log.WithError(err).WithField("collection", collection).
			Warn("decoding collection document, using empty collection")
	}
}

// Save upserts the collection document in full.
func (m *Mongo) Save(ctx context.Context, collection string, doc any) error {
	ctx, span := m.tracer.Start(ctx, "store.save",
		trace.WithAttributes(attribute.String("collection", collection)),
	)
	defer span.End()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	_, err = m.coll.ReplaceOne(ctx,
		bson.M{"_id": collection},
		mongoDocument{Name: collection, Doc: string(data)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert %s document: %w", collection, err)
	}
	return nil
}
