package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConfigured is returned by every data operation on an unconfigured Store.
var ErrNotConfigured = errors.New("database not configured: set DATABASE_URL and DATABASE_NAME")

// Store is the process-wide MongoDB handle. It is either connected (db != nil)
// or unconfigured, in which case all data operations fail with ErrNotConfigured.
// A Store is created once at startup, shared by all handlers, and closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	urlSet bool
	name   string
	now    func() time.Time
}

// NewMongoStore connects to MongoDB using cfg. Missing settings or an invalid
// connection string yield an unconfigured Store rather than an error so the
// liveness and diagnostic endpoints keep working. A failed ping is only logged:
// the driver reconnects on demand and later failures surface per request.
func NewMongoStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) *Store {
	urlSet := cfg.DatabaseURL != ""
	if !cfg.DatabaseConfigured() {
		log.Warn().
			Bool("database_url_set", urlSet).
			Str("database_name", cfg.DatabaseName).
			Msg("MongoDB not configured, persistence disabled")
		return Unconfigured(urlSet, cfg.DatabaseName)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetMaxPoolSize(cfg.MongoMaxPoolSize).
		SetConnectTimeout(cfg.MongoConnectTimeout).
		SetServerSelectionTimeout(cfg.MongoConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		log.Error().Err(err).Msg("MongoDB client could not be created, persistence disabled")
		return Unconfigured(urlSet, cfg.DatabaseName)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Warn().Err(err).Str("database", cfg.DatabaseName).Msg("MongoDB ping failed")
	} else {
		log.Info().
			Str("database", cfg.DatabaseName).
			Uint64("max_pool_size", cfg.MongoMaxPoolSize).
			Msg("MongoDB connected")
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.DatabaseName),
		urlSet: true,
		name:   cfg.DatabaseName,
		now:    time.Now,
	}
}

// NewStore wraps an existing database handle as a connected Store.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		client: db.Client(),
		db:     db,
		urlSet: true,
		name:   db.Name(),
		now:    time.Now,
	}
}

// Unconfigured returns a Store that rejects every data operation.
// urlSet and name are kept for diagnostics only.
func Unconfigured(urlSet bool, name string) *Store {
	return &Store{urlSet: urlSet, name: name, now: time.Now}
}

// Configured reports whether the Store holds a database handle.
func (s *Store) Configured() bool {
	return s != nil && s.db != nil
}

// URLSet reports whether a connection string was supplied.
func (s *Store) URLSet() bool { return s != nil && s.urlSet }

// Name is the configured database name, possibly empty.
func (s *Store) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Database returns the underlying handle or ErrNotConfigured.
func (s *Store) Database() (*mongo.Database, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	return s.db, nil
}

// Ping checks connectivity to the primary.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.Database()
	if err != nil {
		return err
	}
	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// ListCollectionNames returns at most max collection names (all when max <= 0).
func (s *Store) ListCollectionNames(ctx context.Context, max int) ([]string, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}
	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// Close disconnects the client. It is a no-op for an unconfigured Store.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}
