package seeder

//go:generate mockgen -destination=../mock_seeder/mock_seeder.go -package=mock_seeder . Repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flowHater/user-seeder/pkg/logger"
	"github.com/flowHater/user-seeder/pkg/repository"
	"github.com/flowHater/user-seeder/pkg/user"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mode selects how the batch is written
type Mode string

const (
	// ModeInsert inserts every record unconditionally, re-running duplicates the batch
	ModeInsert Mode = "insert"
	// ModeUpsert replaces records by puid, re-running leaves the collection unchanged
	ModeUpsert Mode = "upsert"
)

// Target used when WithTarget is not given
const (
	DefaultDatabase   = "test"
	DefaultCollection = "users"
)

var (
	// ErrEmptyBatch is returned when Seed is called without records
	ErrEmptyBatch = errors.New("empty batch")
	// ErrVerifyMismatch is returned when a seeded record could not be read back unchanged
	ErrVerifyMismatch = errors.New("stored users do not match the batch")
)

// Repo describes all methods needed by Seeder
type Repo interface {
	InsertMany(ctx context.Context, db, collection string, docs []interface{}) ([]primitive.ObjectID, error)
	UpsertMany(ctx context.Context, db, collection, key string, keys []string, docs []interface{}) (repository.UpsertResult, error)
	EnsureUniqueIndex(ctx context.Context, db, collection, key string) (string, error)
	FindUsersByPUID(ctx context.Context, db, collection string, puids []string) ([]user.User, error)
}

// Seeder writes a batch of users into one collection
type Seeder struct {
	repo        Repo
	database    string
	collection  string
	mode        Mode
	ensureIndex bool
	log         logrus.FieldLogger
}

// OptionF describes a func that will be called from the New func
type OptionF func(*Seeder)

// WithTarget sets the database and collection the batch is written to
func WithTarget(db, collection string) OptionF {
	return func(s *Seeder) {
		s.database = db
		s.collection = collection
	}
}

// WithMode sets the write mode, ModeInsert by default
func WithMode(m Mode) OptionF {
	return func(s *Seeder) {
		s.mode = m
	}
}

// WithEnsureIndex makes Seed create a unique index on puid before writing
func WithEnsureIndex(b bool) OptionF {
	return func(s *Seeder) {
		s.ensureIndex = b
	}
}

// WithLogger sets the logger, nothing is logged by default
func WithLogger(l logrus.FieldLogger) OptionF {
	return func(s *Seeder) {
		s.log = l
	}
}

// New returns a new Seeder writing through r
func New(r Repo, opts ...OptionF) *Seeder {
	s := &Seeder{
		repo:       r,
		database:   DefaultDatabase,
		collection: DefaultCollection,
		mode:       ModeInsert,
		log:        logger.Discard(),
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Result reports what a Seed call stored.
// InsertedIDs follows input order: index i is the id of the i-th newly created record.
type Result struct {
	InsertedIDs []primitive.ObjectID
	Matched     int64
}

// Count is the number of records stored by the run, created or replaced
func (r Result) Count() int {
	return len(r.InsertedIDs) + int(r.Matched)
}

func (r Result) String() string {
	return fmt.Sprintf("Inserted %d users.", r.Count())
}

// Seed submits all users as a single batch
func (s Seeder) Seed(ctx context.Context, us []user.User) (Result, error) {
	if len(us) == 0 {
		return Result{}, ErrEmptyBatch
	}

	l := s.log.WithFields(logrus.Fields{
		"database":   s.database,
		"collection": s.collection,
		"mode":       s.mode,
		"records":    len(us),
	})

	if s.ensureIndex {
		name, err := s.repo.EnsureUniqueIndex(ctx, s.database, s.collection, user.PUIDKey)
		if err != nil {
			return Result{}, fmt.Errorf("Error during ensuring puid index with: %w", err)
		}
		l.WithField("index", name).Debug("unique index ready")
	}

	switch s.mode {
	case ModeInsert:
		ids, err := s.repo.InsertMany(ctx, s.database, s.collection, user.Documents(us))
		if err != nil {
			return Result{}, fmt.Errorf("Error during inserting users with: %w", err)
		}
		l.WithField("inserted", len(ids)).Info("batch inserted")

		return Result{InsertedIDs: ids}, nil

	case ModeUpsert:
		ur, err := s.repo.UpsertMany(ctx, s.database, s.collection, user.PUIDKey, user.PUIDs(us), user.Documents(us))
		if err != nil {
			return Result{}, fmt.Errorf("Error during upserting users with: %w", err)
		}

		res := Result{Matched: ur.Matched}
		for i := range us {
			if id, ok := ur.Upserted[i]; ok {
				res.InsertedIDs = append(res.InsertedIDs, id)
			}
		}
		l.WithFields(logrus.Fields{
			"inserted": len(res.InsertedIDs),
			"matched":  ur.Matched,
			"modified": ur.Modified,
		}).Info("batch upserted")

		return res, nil
	}

	return Result{}, fmt.Errorf("Error during seeding with: unknown mode %q", s.mode)
}

// Verify reads the users back by puid and checks that each one is stored with the same fields
func (s Seeder) Verify(ctx context.Context, us []user.User) error {
	stored, err := s.repo.FindUsersByPUID(ctx, s.database, s.collection, user.PUIDs(us))
	if err != nil {
		return fmt.Errorf("Error during reading users back with: %w", err)
	}

	byPUID := make(map[string][]user.User, len(stored))
	for _, st := range stored {
		byPUID[st.PUID] = append(byPUID[st.PUID], st)
	}

	var missing []string
	for _, u := range us {
		found := false
		for _, st := range byPUID[u.PUID] {
			if u.SameFields(st) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, u.PUID)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrVerifyMismatch, strings.Join(missing, ", "))
	}

	s.log.WithField("stored", len(stored)).Debug("batch verified")

	return nil
}
