package database

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Document is the canonical key/value form accepted by the access layer.
type Document = bson.M

// ToDocument normalizes a schema struct or map into a Document.
// Maps are shallow-copied; structs go through their bson tags.
func ToDocument(v any) (Document, error) {
	switch m := v.(type) {
	case nil:
		return nil, errors.New("normalize document: nil value")
	case Document:
		return copyDocument(m), nil
	case map[string]any:
		return copyDocument(m), nil
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("normalize document: %w", err)
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("normalize document: %w", err)
	}
	return doc, nil
}

// StampTimestamps returns a copy of doc with created_at and updated_at set to at (UTC).
func StampTimestamps(doc Document, at time.Time) Document {
	out := copyDocument(doc)
	at = at.UTC()
	out[FieldCreatedAt] = at
	out[FieldUpdatedAt] = at
	return out
}

func copyDocument(src map[string]any) Document {
	out := make(Document, len(src)+2)
	for k, v := range src {
		out[k] = v
	}
	return out
}

// IDString renders a store-generated _id as a string.
func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Filter is an equality conjunction: every field must equal its value.
// Fields not present are unconstrained.
type Filter map[string]any

// Eq adds field == value, skipping empty strings and nil so optional query
// parameters can be passed straight through.
func (f Filter) Eq(field string, value any) Filter {
	switch v := value.(type) {
	case nil:
		return f
	case string:
		if v == "" {
			return f
		}
	}
	f[field] = value
	return f
}

// BSON converts the filter into a query document.
func (f Filter) BSON() bson.M {
	out := bson.M{}
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Matches reports whether doc satisfies every constraint.
func (f Filter) Matches(doc Document) bool {
	for field, want := range f {
		got, ok := doc[field]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// CreateDocument stamps doc with creation and update times and inserts it
// into collection. It returns the generated id as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc Document) (string, error) {
	db, err := s.Database()
	if err != nil {
		return "", err
	}

	res, err := db.Collection(collection).InsertOne(ctx, StampTimestamps(doc, s.now()))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return IDString(res.InsertedID), nil
}

// GetDocuments decodes every document in collection matching filter into
// results, which must be a pointer to a slice. limit <= 0 means no cap.
// Documents come back in natural order.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64, results any) error {
	db, err := s.Database()
	if err != nil {
		return err
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := db.Collection(collection).Find(ctx, filter.BSON(), opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// FindOne decodes the first document matching filter into result.
func (s *Store) FindOne(ctx context.Context, collection string, filter Filter, result any) error {
	db, err := s.Database()
	if err != nil {
		return err
	}

	err = db.Collection(collection).FindOne(ctx, filter.BSON()).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}
