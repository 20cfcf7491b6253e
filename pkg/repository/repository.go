package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/flowHater/user-seeder/pkg/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repo contains all methods to access to Mongodb
type Repo struct {
	client *mongo.Client
}

// OptionF describes a func that will be called from the New func
type OptionF func(*Repo)

// WithClient allows caller to set a specific client which will be used to request
func WithClient(c *mongo.Client) OptionF {
	return func(r *Repo) {
		r.client = c
	}
}

// New creates a new repository
func New(opts ...OptionF) *Repo {
	r := &Repo{}

	for _, o := range opts {
		o(r)
	}

	return r
}

// WriteError is returned when the server rejected a batch, fully or partially.
// Acknowledged is the number of documents the server applied before the rejection.
type WriteError struct {
	Op           string
	Namespace    string
	Acknowledged int
	Err          error
	duplicated   bool
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Error during %s on %s after %d acknowledged documents with: %s", e.Op, e.Namespace, e.Acknowledged, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsDuplicate reports whether the server rejected a document for a unique key violation
func (e *WriteError) IsDuplicate() bool {
	return e.duplicated
}

func newWriteError(op, db, collection string, acknowledged int, err error) *WriteError {
	return &WriteError{
		Op:           op,
		Namespace:    db + "." + collection,
		Acknowledged: acknowledged,
		Err:          err,
		duplicated:   mongo.IsDuplicateKeyError(err),
	}
}

// orderedAcknowledged returns how many documents of an ordered batch were applied:
// the server stops at the first write error, so its index is the applied count
func orderedAcknowledged(err error) int {
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) && len(bwe.WriteErrors) > 0 {
		return bwe.WriteErrors[0].Index
	}

	return 0
}

// UpsertResult is the outcome of UpsertMany.
// Upserted maps the input index of each created document to its new id.
type UpsertResult struct {
	Upserted map[int]primitive.ObjectID
	Matched  int64
	Modified int64
}

// InsertMany stores all docs in one request and returns the generated ids in input order
func (r Repo) InsertMany(ctx context.Context, db, collection string, docs []interface{}) ([]primitive.ObjectID, error) {
	res, err := r.client.Database(db).Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, newWriteError("insert", db, collection, orderedAcknowledged(err), err)
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for i, v := range res.InsertedIDs {
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return ids, fmt.Errorf("Error during reading inserted id %d with: unexpected type %T", i, v)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// UpsertMany replaces every doc whose key field equals keys[i], inserting it when absent.
// All replacements are sent in one ordered bulk request.
func (r Repo) UpsertMany(ctx context.Context, db, collection, key string, keys []string, docs []interface{}) (UpsertResult, error) {
	if len(keys) != len(docs) {
		return UpsertResult{}, fmt.Errorf("Error during upserting in %s.%s with: got %d keys for %d documents", db, collection, len(keys), len(docs))
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	for i, d := range docs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: key, Value: keys[i]}}).
			SetReplacement(d).
			SetUpsert(true))
	}

	res, err := r.client.Database(db).Collection(collection).BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		ack := orderedAcknowledged(err)
		if res != nil {
			ack = int(res.InsertedCount + res.MatchedCount + res.UpsertedCount)
		}

		return UpsertResult{}, newWriteError("upsert", db, collection, ack, err)
	}

	ur := UpsertResult{
		Upserted: make(map[int]primitive.ObjectID, len(res.UpsertedIDs)),
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}
	for i, v := range res.UpsertedIDs {
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return ur, fmt.Errorf("Error during reading upserted id %d with: unexpected type %T", i, v)
		}
		ur.Upserted[int(i)] = id
	}

	return ur, nil
}

// EnsureUniqueIndex creates a unique ascending index on key, a no-op when it already exists
func (r Repo) EnsureUniqueIndex(ctx context.Context, db, collection, key string) (string, error) {
	name, err := r.client.Database(db).Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: key, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(key + "_unique"),
	})
	if err != nil {
		return "", fmt.Errorf("Error during creating index on %s.%s with: %w", db, collection, err)
	}

	return name, nil
}

// FindUsersByPUID returns every stored user whose puid is in puids, sorted by puid
func (r Repo) FindUsersByPUID(ctx context.Context, db, collection string, puids []string) ([]user.User, error) {
	c, err := r.client.Database(db).Collection(collection).Find(ctx,
		bson.M{user.PUIDKey: bson.M{"$in": puids}},
		options.Find().SetSort(bson.D{{Key: user.PUIDKey, Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("Error during fetching users in %s.%s with: %w", db, collection, err)
	}

	us := []user.User{}
	if err := c.All(ctx, &us); err != nil {
		return nil, fmt.Errorf("Error during decoding users from %s.%s with: %w", db, collection, err)
	}

	return us, nil
}
