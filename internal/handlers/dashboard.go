package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telehealth-connect-server/internal/middleware"
	"telehealth-connect-server/internal/models"
	"telehealth-connect-server/internal/utils"
)

// DashboardHandler serves the patient dashboard summary.
type DashboardHandler struct {
	DB *gorm.DB
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// upcomingLimit caps the dashboard slice. The upcoming counter is derived
// from the capped slice, so it never exceeds this value.
const upcomingLimit = 5

// DashboardResponse is the patient dashboard payload.
type DashboardResponse struct {
	FullName             string               `json:"fullName"`
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	UpcomingCount        int                  `json:"upcomingCount"`
}

// GetDashboard returns the patient's display name and up to five
// future-or-today appointments in ascending date order.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var profile models.Profile
	if err := h.DB.First(&profile, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Profile not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	today := time.Now().Format("2006-01-02")

	var appointments []models.Appointment
	err := h.DB.Preload("Doctor").
		Where("patient_id = ? AND appointment_date >= ?", userID, today).
		Order("appointment_date asc").Order("appointment_time asc").
		Limit(upcomingLimit).
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Dashboard fetched successfully", DashboardResponse{
		FullName:             profile.FullName,
		UpcomingAppointments: appointments,
		UpcomingCount:        len(appointments),
	})
}
