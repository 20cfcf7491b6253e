package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/flowHater/user-seeder/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, u user.User) bson.D {
	t.Helper()

	raw, err := bson.Marshal(u)
	require.NoError(t, err)

	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))

	return d
}

func TestRepo_MockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns one id per record", func(mt *mtest.T) {
		us := user.Fixtures()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: len(us)}))

		ids, err := New(WithClient(mt.Client)).InsertMany(context.Background(), "test", "users", user.Documents(us))
		require.NoError(mt, err)
		require.Len(mt, ids, 13)

		seen := make(map[primitive.ObjectID]bool)
		for _, id := range ids {
			assert.False(mt, id.IsZero())
			assert.False(mt, seen[id], "ids should be distinct")
			seen[id] = true
		}
	})

	mt.Run("insert rejected midway reports acknowledged documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   4,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: puid_unique",
		}))

		_, err := New(WithClient(mt.Client)).InsertMany(context.Background(), "test", "users", user.Documents(user.Fixtures()))

		var we *WriteError
		require.True(mt, errors.As(err, &we), "want *WriteError, got %v", err)
		assert.Equal(mt, 4, we.Acknowledged)
		assert.True(mt, we.IsDuplicate())
		assert.Equal(mt, "test.users", we.Namespace)
	})

	mt.Run("upsert splits created and matched", func(mt *mtest.T) {
		us := user.Fixtures()[:3]
		id0, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 3},
			bson.E{Key: "nModified", Value: 1},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: int64(0)}, {Key: "_id", Value: id0}},
				bson.D{{Key: "index", Value: int64(2)}, {Key: "_id", Value: id2}},
			}},
		))

		res, err := New(WithClient(mt.Client)).UpsertMany(context.Background(), "test", "users", user.PUIDKey, user.PUIDs(us), user.Documents(us))
		require.NoError(mt, err)
		assert.Equal(mt, map[int]primitive.ObjectID{0: id0, 2: id2}, res.Upserted)
		assert.EqualValues(mt, 1, res.Matched)
		assert.EqualValues(mt, 1, res.Modified)
	})

	mt.Run("ensure index returns its name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		name, err := New(WithClient(mt.Client)).EnsureUniqueIndex(context.Background(), "test", "users", user.PUIDKey)
		require.NoError(mt, err)
		assert.Equal(mt, "puid_unique", name)
	})

	mt.Run("read back decodes every field", func(mt *mtest.T) {
		us := user.Fixtures()
		docs := make([]bson.D, 0, len(us))
		for _, u := range us {
			u.ID = primitive.NewObjectID()
			docs = append(docs, toDoc(mt.T, u))
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, docs...))

		stored, err := New(WithClient(mt.Client)).FindUsersByPUID(context.Background(), "test", "users", user.PUIDs(us))
		require.NoError(mt, err)
		require.Len(mt, stored, len(us))
		for i := range us {
			assert.True(mt, us[i].SameFields(stored[i]), "got %+v want %+v", stored[i], us[i])
			assert.False(mt, stored[i].ID.IsZero())
		}
	})
}

func TestNewWriteError(t *testing.T) {
	dup := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Index: 7, Code: 11000, Message: "E11000 duplicate key error"}},
		},
	}
	other := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Index: 2, Code: 121, Message: "Document failed validation"}},
		},
	}

	reset := errors.New("connection reset")

	tests := []struct {
		name      string
		err       error
		ack       int
		wantAck   int
		duplicate bool
	}{
		{name: "ordered duplicate", err: dup, ack: orderedAcknowledged(dup), wantAck: 7, duplicate: true},
		{name: "ordered validation failure", err: other, ack: orderedAcknowledged(other), wantAck: 2},
		{name: "not a bulk error", err: reset, ack: orderedAcknowledged(reset), wantAck: 0},
		{name: "counted from upsert result", err: dup, ack: 5, wantAck: 5, duplicate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			we := newWriteError("insert", "test", "users", tt.ack, tt.err)

			assert.Equal(t, tt.wantAck, we.Acknowledged)
			assert.Equal(t, tt.duplicate, we.IsDuplicate())
			assert.Equal(t, tt.err, we.Unwrap())
			assert.Contains(t, we.Error(), "test.users")
		})
	}
}
