package testutil

import (
	"context"
	"sort"
	"time"

	attendancestore "github.com/dalemusser/rollcall/internal/app/store/attendance"
	"github.com/dalemusser/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FakeRecordStore is an in-memory attendance.RecordStore. It mirrors the
// Mongo store's contract, including the unique (user, day) constraint, so
// handler tests run without a database.
type FakeRecordStore struct {
	Records []models.AttendanceRecord

	// FailWith, when set, is returned by every method; used to exercise
	// server-fault paths.
	FailWith error
}

// FindByUserAndDate returns the record for (userID, day), or nil.
func (f *FakeRecordStore) FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*models.AttendanceRecord, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	for i := range f.Records {
		r := &f.Records[i]
		if r.UserID == userID && r.Date.Equal(day) {
			return r, nil
		}
	}
	return nil, nil
}

// Create inserts rec, enforcing the unique (user, day) constraint the way
// the Mongo unique index does.
func (f *FakeRecordStore) Create(ctx context.Context, rec models.AttendanceRecord) (models.AttendanceRecord, error) {
	if f.FailWith != nil {
		return models.AttendanceRecord{}, f.FailWith
	}
	if existing, _ := f.FindByUserAndDate(ctx, rec.UserID, rec.Date); existing != nil {
		return models.AttendanceRecord{}, attendancestore.ErrAlreadyMarked
	}
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if rec.TimeIn.IsZero() {
		rec.TimeIn = now
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now
	f.Records = append(f.Records, rec)
	return rec, nil
}

// RecentByUser returns up to limit records for userID, date descending.
func (f *FakeRecordStore) RecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.AttendanceRecord, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	var out []models.AttendanceRecord
	for _, r := range f.Records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// InWindow returns records with date in [start, end] in insertion order.
func (f *FakeRecordStore) InWindow(ctx context.Context, start, end time.Time) ([]models.AttendanceRecord, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	var out []models.AttendanceRecord
	for _, r := range f.Records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// FakeUserDirectory is an in-memory attendance.UserDirectory.
type FakeUserDirectory struct {
	Users map[primitive.ObjectID]models.User

	FailWith error
}

// Add registers a user and returns it.
func (f *FakeUserDirectory) Add(name, email string) models.User {
	if f.Users == nil {
		f.Users = make(map[primitive.ObjectID]models.User)
	}
	u := models.User{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
		Role:  "member",
	}
	f.Users[u.ID] = u
	return u
}

// GetByIDs returns the known users among ids, keyed by id.
func (f *FakeUserDirectory) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	out := make(map[primitive.ObjectID]models.User, len(ids))
	for _, id := range ids {
		if u, ok := f.Users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}
