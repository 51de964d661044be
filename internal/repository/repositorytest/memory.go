// Package repositorytest provides an in-memory DocumentStore for tests.
package repositorytest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/stemsi/school-helper-backend/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents per collection in insertion order and applies
// the same equality-conjunction semantics as the MongoDB store.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]database.Document

	// Now stamps created_at/updated_at. Defaults to time.Now.
	Now func() time.Time
	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]database.Document),
		Now:         time.Now,
	}
}

// CreateDocument implements repository.DocumentStore.
func (m *MemoryStore) CreateDocument(_ context.Context, collection string, doc database.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}

	stored := database.StampTimestamps(doc, m.Now())
	id, ok := stored["_id"]
	if !ok {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}
	m.collections[collection] = append(m.collections[collection], stored)
	return database.IDString(id), nil
}

// GetDocuments implements repository.DocumentStore.
func (m *MemoryStore) GetDocuments(_ context.Context, collection string, filter database.Filter, limit int64, results any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	matched := m.match(collection, filter, limit)

	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("results must be a pointer to a slice, got %T", results)
	}
	slice := rv.Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(matched))
	for _, doc := range matched {
		elem := reflect.New(slice.Type().Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

// FindOne implements repository.DocumentStore.
func (m *MemoryStore) FindOne(_ context.Context, collection string, filter database.Filter, result any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	matched := m.match(collection, filter, 1)
	if len(matched) == 0 {
		return database.ErrNotFound
	}
	return decode(matched[0], result)
}

// Insert stores doc verbatim, bypassing timestamp stamping. Useful for
// seeding documents shaped differently from what the API writes.
func (m *MemoryStore) Insert(collection string, doc database.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], doc)
}

// Documents returns the raw documents of a collection.
func (m *MemoryStore) Documents(collection string) []database.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]database.Document(nil), m.collections[collection]...)
}

// ListCollectionNames returns the names of non-empty collections, sorted,
// capped at max when max > 0.
func (m *MemoryStore) ListCollectionNames(_ context.Context, max int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	names := make([]string, 0, len(m.collections))
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

func (m *MemoryStore) match(collection string, filter database.Filter, limit int64) []database.Document {
	var out []database.Document
	for _, doc := range m.collections[collection] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if filter.Matches(doc) {
			out = append(out, doc)
		}
	}
	return out
}

func decode(doc database.Document, dst any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return errors.Join(errors.New("encode stored document"), err)
	}
	return bson.Unmarshal(raw, dst)
}
