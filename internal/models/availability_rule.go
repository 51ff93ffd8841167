package models

import "time"

// AvailabilityRule is either a recurring weekly rule (DayOfWeek set)
// or a date-specific exception (SpecificDate set); never both. Times
// are minute-resolution "HH:MM" strings, local to the salon. An
// exception with start == end == "00:00" means the day is closed.
type AvailabilityRule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	DayOfWeek    *int    `json:"day_of_week"`                  // 0-6, Sunday = 0
	SpecificDate *string `gorm:"size:10" json:"specific_date"` // "YYYY-MM-DD"

	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	IsException bool   `gorm:"default:false" json:"is_exception"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
