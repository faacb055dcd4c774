// internal/store/file.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FileStore keeps one pretty-printed JSON file per collection under dir.
// Writes to the same file are serialized so a slow writer cannot leave a torn
// document behind; the load-mutate-save race described on Store remains.
type FileStore struct {
	dir    string
	log    *logrus.Logger
	tracer trace.Tracer

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir, creating dir if needed.
func NewFileStore(dir string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		dir:    dir,
		log:    log,
		tracer: otel.Tracer("storeadmin/store"),
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

func (fs *FileStore) path(collection string) string {
	return filepath.Join(fs.dir, collection+".json")
}

func (fs *FileStore) lock(collection string) *sync.Mutex {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	l, ok := fs.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		fs.locks[collection] = l
	}
	return l
}

// Load reads and decodes the collection file. Missing files, unreadable
// files, and malformed JSON all degrade to the empty collection.
func (fs *FileStore) Load(ctx context.Context, collection string, out any) {
	_, span := fs.tracer.Start(ctx, "store.load",
		trace.WithAttributes(attribute.String("collection", collection)),
	)
	defer span.End()

	data, err := os.ReadFile(fs.path(collection))
	if err != nil {
		fs.log.WithError(err).WithField("collection", collection).
			Warn("reading collection file, using empty collection")
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		fs.log.WithError(err).WithField("collection", collection).
			Warn("decoding collection file, using empty collection")
	}
}

// Save rewrites the collection file in full.
func (fs *FileStore) Save(ctx context.Context, collection string, doc any) error {
	_, span := fs.tracer.Start(ctx, "store.save",
		trace.WithAttributes(attribute.String("collection", collection)),
	)
	defer span.End()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	l := fs.lock(collection)
	l.Lock()
	defer l.Unlock()

	if err := os.WriteFile(fs.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write %s document: %w", collection, err)
	}
	return nil
}
