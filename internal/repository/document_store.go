package repository

import (
	"context"

	"github.com/stemsi/school-helper-backend/internal/database"
)

// Collection names are the lowercase entity names.
const (
	CollectionStudent    = "student"
	CollectionMarksheet  = "marksheet"
	CollectionAdmitCard  = "admitcard"
	CollectionAttendance = "attendance"
)

// DocumentStore is the generic access layer the repositories are built on.
// *database.Store satisfies it.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc database.Document) (string, error)
	GetDocuments(ctx context.Context, collection string, filter database.Filter, limit int64, results any) error
	FindOne(ctx context.Context, collection string, filter database.Filter, result any) error
}

var _ DocumentStore = (*database.Store)(nil)

// insert normalizes v and stores it in collection.
func insert(ctx context.Context, store DocumentStore, collection string, v any) (string, error) {
	doc, err := database.ToDocument(v)
	if err != nil {
		return "", err
	}
	return store.CreateDocument(ctx, collection, doc)
}
