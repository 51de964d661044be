package database

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestNewMongoStoreWithoutSettings(t *testing.T) {
	cfg := &config.Config{DatabaseName: "school"}
	s := NewMongoStore(context.Background(), cfg, zerolog.Nop())

	assert.False(t, s.Configured())
	assert.False(t, s.URLSet())
	assert.Equal(t, "school", s.Name())
}

func TestNewMongoStoreWithInvalidURL(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:         "not-a-mongo-url",
		DatabaseName:        "school",
		MongoConnectTimeout: time.Second,
		MongoMaxPoolSize:    5,
	}
	s := NewMongoStore(context.Background(), cfg, zerolog.Nop())

	assert.False(t, s.Configured())
	assert.True(t, s.URLSet())
}

func TestStoreAgainstMockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create returns hex id", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		fixed := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
		s.now = func() time.Time { return fixed }

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := s.CreateDocument(context.Background(), "student", Document{"roll_no": "1"})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("create surfaces store errors", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := s.CreateDocument(context.Background(), "student", Document{"roll_no": "1"})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrNotConfigured)
	})

	mt.Run("get documents decodes results", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		ns := mt.DB.Name() + ".attendance"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: "Present"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: "Present"}},
		))

		var out []Document
		err := s.GetDocuments(context.Background(), "attendance", Filter{}.Eq("status", "Present"), 5, &out)
		require.NoError(mt, err)
		assert.Len(mt, out, 2)
		assert.Equal(mt, "Present", out[0]["status"])
	})

	mt.Run("find one maps no documents to not found", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".student", mtest.FirstBatch))

		var out Document
		err := s.FindOne(context.Background(), "student", Filter{"roll_no": "404"}, &out)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list collection names is capped", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		batch := make([]bson.D, 0, 12)
		for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
			batch = append(batch, bson.D{{Key: "name", Value: name}, {Key: "type", Value: "collection"}})
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".$cmd.listCollections", mtest.FirstBatch, batch...))

		names, err := s.ListCollectionNames(context.Background(), 10)
		require.NoError(mt, err)
		assert.Len(mt, names, 10)
		assert.Equal(mt, "a", names[0])
	})

	mt.Run("ping", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, s.Ping(context.Background()))
	})
}
