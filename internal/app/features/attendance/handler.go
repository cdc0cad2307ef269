// internal/app/features/attendance/handler.go
package attendance

import (
	"context"
	"time"

	"github.com/dalemusser/rollcall/internal/app/system/dayclock"
	"github.com/dalemusser/rollcall/internal/app/system/httpjson"
	"github.com/dalemusser/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// historyLimit bounds the personal history query. This is a fixed recent
// window, not a pagination cursor.
const historyLimit = 30

// RecordStore is the slice of the attendance store this feature needs.
// The Mongo-backed implementation lives in store/attendance; tests swap in
// an in-memory fake.
type RecordStore interface {
	FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*models.AttendanceRecord, error)
	Create(ctx context.Context, rec models.AttendanceRecord) (models.AttendanceRecord, error)
	RecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.AttendanceRecord, error)
	InWindow(ctx context.Context, start, end time.Time) ([]models.AttendanceRecord, error)
}

// UserDirectory resolves user ids to name/email for the report join.
type UserDirectory interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
}

// Handler serves the attendance endpoints.
type Handler struct {
	Records RecordStore
	Users   UserDirectory
	Clock   *dayclock.Clock
	ErrLog  *httpjson.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs an attendance Handler.
func NewHandler(records RecordStore, users UserDirectory, clock *dayclock.Clock, errLog *httpjson.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Records: records,
		Users:   users,
		Clock:   clock,
		ErrLog:  errLog,
		Log:     logger,
	}
}
