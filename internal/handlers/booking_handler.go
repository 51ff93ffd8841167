package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonbook/salon-api/internal/cache"
	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/httpresp"
	"github.com/salonbook/salon-api/internal/middleware"
	"github.com/salonbook/salon-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *booking.CreateBooking
	cancel   *booking.CancelBooking
	complete *booking.CompleteBooking
	list     *booking.ListBookings
	slots    *cache.SlotCache
}

func NewBookingHandler(
	createUC *booking.CreateBooking,
	cancelUC *booking.CancelBooking,
	completeUC *booking.CompleteBooking,
	listUC *booking.ListBookings,
	slots *cache.SlotCache,
) *BookingHandler {
	return &BookingHandler{
		create:   createUC,
		cancel:   cancelUC,
		complete: completeUC,
		list:     listUC,
		slots:    slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceIDs    []uint `json:"service_ids" binding:"required,min=1"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Note          string `json:"note"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE (walk-in taken over the counter)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		BarberID:      barberID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceIDs:    req.ServiceIDs,
		Date:          req.Date,
		Time:          req.Time,
		Note:          req.Note,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	h.slots.Invalidate(c.Request.Context(), b.BarberID, b.BookingDate)

	httpresp.Created(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	out, err := h.list.Execute(c.Request.Context(), barberID, date, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	from, to := monthDateRange(year, month)

	out, err := h.list.Execute(c.Request.Context(), barberID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.OK(c, gin.H{
		"year":     year,
		"month":    month,
		"bookings": out,
	})
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancel.Execute(c.Request.Context(), booking.CancelBookingInput{
		BookingID: uint(bookingID),
		By:        domain.CancelledByBarber,
		Reason:    req.Reason,
		BarberID:  barberID,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	h.slots.Invalidate(c.Request.Context(), b.BarberID, b.BookingDate)

	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), barberID, uint(bookingID))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidation):
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid booking data.")

	case httperr.IsBusiness(err, httperr.CodeBarberNotFound):
		httperr.NotFound(c, httperr.CodeBarberNotFound, "Barber not found.")

	case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
		httperr.BadRequest(c, httperr.CodeServiceNotFound, "One or more services are unavailable.")

	case httperr.IsBusiness(err, httperr.CodeBookingNotFound):
		httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")

	case httperr.IsBusiness(err, httperr.CodeSlotConflict):
		httperr.Conflict(c, httperr.CodeSlotConflict, "The selected time is no longer available.")

	case httperr.IsBusiness(err, httperr.CodeOutsideHours):
		httperr.BadRequest(c, httperr.CodeOutsideHours, "The selected time is outside working hours.")

	case httperr.IsBusiness(err, httperr.CodeTimeInPast):
		httperr.BadRequest(c, httperr.CodeTimeInPast, "The selected time has already passed.")

	case httperr.IsBusiness(err, httperr.CodeInvalidState):
		httperr.BadRequest(c, httperr.CodeInvalidState, "The booking cannot change state.")

	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
