package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonbook/salon-api/internal/cache"
	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/httpresp"
	"github.com/salonbook/salon-api/internal/schedule"
	"github.com/salonbook/salon-api/internal/timezone"
	"github.com/salonbook/salon-api/internal/usecase/booking"
)

// Public booking writes get a hard deadline so a stuck connection
// cannot hold row locks open.
const publicWriteTimeout = 30 * time.Second

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *booking.GetAvailability
	create       *booking.CreateBooking
	cancel       *booking.CancelBooking
	slots        *cache.SlotCache
	tz           string
}

func NewPublicHandler(
	repo domain.Repository,
	availabilityUC *booking.GetAvailability,
	createUC *booking.CreateBooking,
	cancelUC *booking.CancelBooking,
	slots *cache.SlotCache,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availabilityUC,
		create:       createUC,
		cancel:       cancelUC,
		slots:        slots,
		tz:           tz,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceIDs    []uint `json:"service_ids" binding:"required,min=1"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Note          string `json:"note"`
}

type PublicCancelBookingRequest struct {
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Reason        string `json:"reason"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListActiveServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	date := c.Query("date")
	if _, err := schedule.ParseDate(date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	serviceIDs, err := parseServiceIDs(c.Query("service_ids"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Invalid service id list.")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.repo.GetBarber(ctx, uint(barberID)); err != nil {
		httperr.NotFound(c, httperr.CodeBarberNotFound, "Barber not found.")
		return
	}

	if slots, ok := h.slots.Get(ctx, uint(barberID), date, serviceIDs); ok {
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
		return
	}

	slots, err := h.availability.Execute(ctx, domain.AvailabilityInput{
		BarberID:   uint(barberID),
		Date:       date,
		ServiceIDs: serviceIDs,
		Now:        timezone.NowIn(h.tz),
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
			httperr.BadRequest(c, httperr.CodeServiceNotFound, "One or more services are unavailable.")
			return
		}

		httperr.Internal(c, "availability_failed", "Could not resolve availability.")
		return
	}

	h.slots.Set(ctx, uint(barberID), date, serviceIDs, slots)

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), publicWriteTimeout)
	defer cancel()

	b, err := h.create.Execute(ctx, booking.CreateBookingInput{
		BarberID:      uint(barberID),
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

////////////////////////////////////////////////////////
// CANCEL BOOKING (customer, verified by phone)
////////////////////////////////////////////////////////

func (h *PublicHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req PublicCancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid cancel payload.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), booking.CancelBookingInput{
		BookingID:     uint(bookingID),
		By:            domain.CancelledByCustomer,
		Reason:        req.Reason,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	h.slots.Invalidate(c.Request.Context(), b.BarberID, b.BookingDate)

	httpresp.OK(c, b)
}
