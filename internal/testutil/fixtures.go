package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/rollcall/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test directory user with the given name, email, and role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Email:     email,
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, "admin")
}

// CreateMember creates a test member user.
func (f *Fixtures) CreateMember(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, "member")
}

// CreateAttendance inserts an attendance record for userID on day with the
// given status. day should be a midnight value.
func (f *Fixtures) CreateAttendance(ctx context.Context, userID primitive.ObjectID, day time.Time, status string) models.AttendanceRecord {
	f.t.Helper()

	now := time.Now().UTC()
	rec := models.AttendanceRecord{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Date:       day,
		TimeIn:     now,
		Status:     status,
		DayOfMonth: day.Day(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := f.db.Collection("attendance_records").InsertOne(ctx, rec)
	if err != nil {
		f.t.Fatalf("failed to create test attendance record: %v", err)
	}

	return rec
}
