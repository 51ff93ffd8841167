package dto

type BookingListDTO struct {
	ID               uint     `json:"id"`
	BookingDate      string   `json:"booking_date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	Status           string   `json:"status"`
	CustomerName     string   `json:"customer_name"`
	ServiceNames     []string `json:"service_names"`
	TotalDurationMin int      `json:"total_duration_minutes"`
	TotalPrice       float64  `json:"total_price"`
}
