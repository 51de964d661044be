package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIndexesOnUnconfiguredStore(t *testing.T) {
	s := Unconfigured(false, "")

	_, err := s.EnsureIndexes(context.Background(), []IndexSpec{{Collection: "student", Keys: bson.D{{Key: "roll_no", Value: 1}}}})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = s.ListIndexes(context.Background(), "student")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestIndexesAgainstMockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ensure indexes names each index", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		names, err := s.EnsureIndexes(context.Background(), []IndexSpec{
			{Collection: "student", Keys: bson.D{{Key: "roll_no", Value: 1}}},
			{Collection: "attendance", Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "date", Value: 1}}},
		})
		require.NoError(mt, err)
		assert.Equal(mt, []string{"student.roll_no_1", "attendance.student_id_1_date_1"}, names)
	})

	mt.Run("ensure indexes stops at the first failure", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index options conflict",
			Name:    "IndexOptionsConflict",
		}))

		names, err := s.EnsureIndexes(context.Background(), []IndexSpec{
			{Collection: "student", Keys: bson.D{{Key: "roll_no", Value: 1}}},
			{Collection: "marksheet", Keys: bson.D{{Key: "student_id", Value: 1}}},
		})
		require.Error(mt, err)
		assert.Empty(mt, names)
		assert.Contains(mt, err.Error(), "student")
	})

	mt.Run("list indexes decodes descriptions", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".student", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "_id_"}, {Key: "key", Value: bson.D{{Key: "_id", Value: 1}}}},
			bson.D{{Key: "name", Value: "roll_no_1"}, {Key: "key", Value: bson.D{{Key: "roll_no", Value: 1}}}},
		))

		idx, err := s.ListIndexes(context.Background(), "student")
		require.NoError(mt, err)
		require.Len(mt, idx, 2)
		assert.Equal(mt, "roll_no_1", idx[1]["name"])
	})
}
