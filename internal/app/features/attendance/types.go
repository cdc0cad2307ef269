// internal/app/features/attendance/types.go
package attendance

import "github.com/dalemusser/rollcall/internal/domain/models"

// markRequest is the optional POST /attendance/mark body.
type markRequest struct {
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// UserSummary is one user's aggregate for a requested month.
//
// AttendanceRate is part of the published shape but is not computed; it
// serializes as 0, matching the behavior consumers already see.
type UserSummary struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	DaysPresent    int     `json:"daysPresent"`
	TotalDays      int     `json:"totalDays"`
	AttendanceRate float64 `json:"attendanceRate"`
}

// monthlyResponse pairs the aggregated summaries with the raw matched
// records; exportData feeds downstream CSV generation.
type monthlyResponse struct {
	Report     []UserSummary             `json:"report"`
	ExportData []models.AttendanceRecord `json:"exportData"`
}
