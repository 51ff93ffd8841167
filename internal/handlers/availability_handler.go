package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonbook/salon-api/internal/audit"
	"github.com/salonbook/salon-api/internal/middleware"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/schedule"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAvailabilityHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type WeeklyDayConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	Open      bool   `json:"open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WeeklyUpdateRequest struct {
	Days []WeeklyDayConfig `json:"days" binding:"required"`
}

type ExceptionRangeRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`

	// Optional working hours for the range. Omitted means the days
	// are fully closed.
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DeleteExceptionsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// --------- Weekly schedule ---------

// GetWeekly returns the recurring rules, one per open weekday.
func (h *AvailabilityHandler) GetWeekly(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var rules []models.AvailabilityRule
	if err := h.db.
		Where("barber_id = ? AND specific_date IS NULL", barberID).
		Order("day_of_week ASC").
		Find(&rules).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// UpdateWeekly replaces the whole recurring schedule. A closed day is
// simply absent; sending open=false drops its row.
func (h *AvailabilityHandler) UpdateWeekly(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req WeeklyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// one rule per weekday; a second entry for the same day would make
	// window resolution order-dependent
	seen := make(map[int]bool, len(req.Days))

	var toCreate []models.AvailabilityRule
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.DayOfWeek] = true

		if !d.Open {
			continue
		}

		if !schedule.IsValidTime(d.StartTime) || !schedule.IsValidTime(d.EndTime) || d.StartTime >= d.EndTime {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_range"})
			return
		}

		day := d.DayOfWeek
		toCreate = append(toCreate, models.AvailabilityRule{
			BarberID:  barberID,
			DayOfWeek: &day,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ? AND specific_date IS NULL", barberID).
			Delete(&models.AvailabilityRule{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &barberID,
		Action: "availability_updated",
		Entity: "availability_rule",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Exceptions ---------

// ListExceptions returns exception days coalesced into ranges, so a
// week of vacation comes back as one entry instead of seven.
func (h *AvailabilityHandler) ListExceptions(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var rules []models.AvailabilityRule
	if err := h.db.
		Where("barber_id = ? AND specific_date IS NOT NULL", barberID).
		Order("specific_date ASC").
		Find(&rules).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_exceptions"})
		return
	}

	days := make([]schedule.ExceptionDay, 0, len(rules))
	for _, r := range rules {
		days = append(days, schedule.ExceptionDay{
			ID:          r.ID,
			Date:        *r.SpecificDate,
			Description: r.Description,
		})
	}

	c.JSON(http.StatusOK, gin.H{"exceptions": schedule.GroupExceptions(days)})
}

// CreateExceptionRange expands an inclusive date range into one
// exception row per day. Without explicit times the days are closed.
func (h *AvailabilityHandler) CreateExceptionRange(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req ExceptionRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, end := req.StartTime, req.EndTime
	if start != "" || end != "" {
		if !schedule.IsValidTime(start) || !schedule.IsValidTime(end) || start >= end {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_range"})
			return
		}
	}

	expanded, err := schedule.ExpandExceptionRange(req.StartDate, req.EndDate, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_range"})
		return
	}

	toCreate := make([]models.AvailabilityRule, 0, len(expanded))
	for _, r := range expanded {
		date := r.Date
		row := models.AvailabilityRule{
			BarberID:     barberID,
			SpecificDate: &date,
			StartTime:    r.Start,
			EndTime:      r.End,
			IsException:  true,
			Description:  r.Description,
		}
		if start != "" {
			row.StartTime = start
			row.EndTime = end
		}
		toCreate = append(toCreate, row)
	}

	if err := h.db.Create(&toCreate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_exceptions"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &barberID,
		Action: "exception_range_created",
		Entity: "availability_rule",
		Metadata: map[string]any{
			"start_date": req.StartDate,
			"end_date":   req.EndDate,
			"days":       len(toCreate),
		},
	})

	c.JSON(http.StatusCreated, gin.H{"created": len(toCreate)})
}

// DeleteExceptions removes exception rows by id. Ranges come back from
// ListExceptions with their member ids, so deleting a whole range is
// one call.
func (h *AvailabilityHandler) DeleteExceptions(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req DeleteExceptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res := h.db.
		Where("barber_id = ? AND specific_date IS NOT NULL AND id IN ?", barberID, req.IDs).
		Delete(&models.AvailabilityRule{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_exceptions"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &barberID,
		Action: "exceptions_deleted",
		Entity: "availability_rule",
		Metadata: map[string]any{
			"ids":     req.IDs,
			"deleted": res.RowsAffected,
		},
	})

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
