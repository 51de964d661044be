package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IndexSpec describes a non-unique lookup index on one collection.
type IndexSpec struct {
	Collection string
	Keys       bson.D
}

// EnsureIndexes creates every index in specs. Existing indexes with the same
// keys are left alone by the server. It returns the created index names.
func (s *Store) EnsureIndexes(ctx context.Context, specs []IndexSpec) ([]string, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys})
		if err != nil {
			return names, fmt.Errorf("create index on %s: %w", spec.Collection, err)
		}
		names = append(names, spec.Collection+"."+name)
	}
	return names, nil
}

// ListIndexes returns the raw index descriptions of a collection.
func (s *Store) ListIndexes(ctx context.Context, collection string) ([]Document, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}

	cur, err := db.Collection(collection).Indexes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list indexes of %s: %w", collection, err)
	}
	var out []Document
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode indexes of %s: %w", collection, err)
	}
	return out, nil
}
