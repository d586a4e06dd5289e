package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telehealth-connect-server/internal/middleware"
	"telehealth-connect-server/internal/models"
	"telehealth-connect-server/internal/utils"
)

// DoctorPortalHandler handles the doctor-facing dashboard: the doctor's
// appointment list and the status/notes updates on it.
type DoctorPortalHandler struct {
	DB *gorm.DB
}

// NewDoctorPortalHandler creates a new DoctorPortalHandler.
func NewDoctorPortalHandler(db *gorm.DB) *DoctorPortalHandler {
	return &DoctorPortalHandler{DB: db}
}

// resolveDoctor maps the authenticated identity to its Doctor row.
func (h *DoctorPortalHandler) resolveDoctor(c *gin.Context) (*models.Doctor, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return nil, false
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "No doctor record is linked to this account")
		} else {
			utils.InternalServerError(c, "Database error resolving doctor: "+err.Error())
		}
		return nil, false
	}
	return &doctor, true
}

// GetAppointments returns the doctor's appointments joined with the patient
// profile, oldest first.
func (h *DoctorPortalHandler) GetAppointments(c *gin.Context) {
	doctor, ok := h.resolveDoctor(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	err := h.DB.Preload("Patient").
		Where("doctor_id = ?", doctor.ID).
		Order("appointment_date asc").Order("appointment_time asc").
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// UpdateAppointmentRequest is a partial update: only the fields present in
// the request are written. Status may move to any member of the enumeration;
// notes are free text.
type UpdateAppointmentRequest struct {
	Status *models.AppointmentStatus `json:"status"`
	Notes  *string                   `json:"notes"`
}

// UpdateAppointment applies a partial status/notes update to one of the
// doctor's own appointments and returns the merged row.
func (h *DoctorPortalHandler) UpdateAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	doctor, ok := h.resolveDoctor(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if req.Status == nil && req.Notes == nil {
		utils.BadRequest(c, "Nothing to update: provide status and/or notes")
		return
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		utils.BadRequest(c, "Invalid status: "+string(*req.Status))
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if appointment.DoctorID != doctor.ID {
		utils.Forbidden(c, "You are not authorized to update this appointment")
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
		appointment.Status = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
		appointment.Notes = req.Notes
	}

	if err := h.DB.Model(&appointment).Updates(updates).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment updated successfully", appointment)
}
