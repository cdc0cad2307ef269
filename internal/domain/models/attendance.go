// internal/domain/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance status values. The set is closed; anything else is rejected
// at the operation boundary.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

// ValidStatus reports whether s is one of the closed status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// AttendanceRecord is one attendance entry per user per calendar day.
//
// Date is normalized to midnight in the service's configured time zone and,
// together with UserID, forms the dedup key. The unique index on
// (user_id, date) is the final arbiter when two marks race; see the
// attendance store.
//
// TimeOut is reserved for a future check-out flow; nothing in this service
// sets it.
type AttendanceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"userId"`
	Date       time.Time          `bson:"date" json:"date"`
	TimeIn     time.Time          `bson:"time_in" json:"timeIn"`
	TimeOut    *time.Time         `bson:"time_out,omitempty" json:"timeOut,omitempty"`
	Status     string             `bson:"status" json:"status"` // Present | Absent | Late
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	DayOfMonth int                `bson:"day_of_month" json:"dayOfMonth"` // 1-31, denormalized from Date

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
