// internal/app/store/attendance/store.go
package attendancestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/rollcall/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadyMarked is returned when a record for the same (user, day)
// already exists, whether caught by the pre-check or by the unique index.
var ErrAlreadyMarked = errors.New("attendance already marked today")

// Store manages the attendance_records collection.
type Store struct {
	c *mongo.Collection
}

// New creates a Store over db's attendance_records collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attendance_records")}
}

// FindByUserAndDate returns the record for (userID, day), or nil when none
// exists. day must be the normalized midnight value used at insert.
func (s *Store) FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "date": day}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts a new record, filling ID, TimeIn, and lifecycle
// timestamps when unset. A duplicate (user_id, date) insert — including one
// that lost a race after the caller's pre-check — comes back as
// ErrAlreadyMarked.
func (s *Store) Create(ctx context.Context, rec models.AttendanceRecord) (models.AttendanceRecord, error) {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if rec.TimeIn.IsZero() {
		rec.TimeIn = now
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		if wafflemongo.IsDup(err) {
			return models.AttendanceRecord{}, ErrAlreadyMarked
		}
		return models.AttendanceRecord{}, err
	}
	return rec, nil
}

// RecentByUser returns up to limit records owned by userID, newest first
// by date.
func (s *Store) RecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.AttendanceRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.AttendanceRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// InWindow returns every record with date in [start, end], both endpoints
// inclusive, across all users. Results come back in insertion order
// (time_in ascending) so report grouping is deterministic.
func (s *Store) InWindow(ctx context.Context, start, end time.Time) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time_in", Value: 1}})

	filter := bson.M{
		"date": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.AttendanceRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
