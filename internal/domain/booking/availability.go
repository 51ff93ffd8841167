package booking

import "time"

// AvailabilityInput asks for the bookable slots of one barber on one
// civil date, for a service selection totalling some duration. Now is
// the salon-local clock at query time.
type AvailabilityInput struct {
	BarberID   uint
	Date       string // "YYYY-MM-DD"
	ServiceIDs []uint
	Now        time.Time
}
