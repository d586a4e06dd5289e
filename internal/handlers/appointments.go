package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telehealth-connect-server/internal/middleware"
	"telehealth-connect-server/internal/models"
	"telehealth-connect-server/internal/utils"
)

// AppointmentHandler handles the patient side of the appointment lifecycle.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctorId" binding:"required,uuid"`
	AppointmentDate string `json:"appointmentDate" binding:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" binding:"required,datetime=15:04"`
	Reason          string `json:"reason" binding:"required"`
}

// CreateAppointment books an appointment for the authenticated patient with
// status pending. There is no overlap check: two bookings for the same
// doctor, date, and time both succeed, and a repeated submit creates a
// second row.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	// Verify the doctor exists before inserting anything
	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", req.DoctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error verifying doctor: "+err.Error())
		}
		return
	}

	appointment := models.Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          models.StatusPending,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Created(c, "Appointment booked successfully", appointment)
}

// GetMyAppointments returns the authenticated patient's appointments joined
// with doctor and health center, newest first.
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	err := h.DB.Preload("Doctor").Preload("Doctor.HealthCenter").
		Where("patient_id = ?", patientID).
		Order("appointment_date desc").Order("appointment_time desc").
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// CancelAppointment moves one of the patient's own appointments from pending
// to cancelled. Any other starting status is rejected; a cancelled or
// completed appointment stays as it is.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
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

	if appointment.PatientID != patientID {
		utils.Forbidden(c, "You are not authorized to cancel this appointment")
		return
	}

	if appointment.Status != models.StatusPending {
		utils.BadRequest(c, "Only pending appointments can be cancelled")
		return
	}

	appointment.Status = models.StatusCancelled
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment cancelled", appointment)
}
