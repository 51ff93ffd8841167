package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// Civil date and times, local to the salon. Lexicographic order on
	// these strings matches chronological order, which the overlap
	// queries rely on.
	BookingDate string `gorm:"size:10;index" json:"booking_date"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`

	TotalDurationMin int     `json:"total_duration_minutes"`
	TotalPrice       float64 `json:"total_price"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CustomerNote       string `gorm:"size:255" json:"customer_note"`
	CancelledBy        string `gorm:"size:10" json:"cancelled_by"` // "customer" or "barber"
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	Services []BookingService `json:"services"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
