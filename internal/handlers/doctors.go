package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telehealth-connect-server/internal/models"
	"telehealth-connect-server/internal/utils"
)

// DoctorHandler serves the doctor directory.
type DoctorHandler struct {
	DB *gorm.DB
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{DB: db}
}

// ListDoctors returns all doctors with their health center, ordered by name.
// An optional "search" query narrows the full list with a case-insensitive
// substring match against name, specialization, or health-center city. The
// filter runs over the fetched list, so an empty search term is the identity.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.DB.Preload("HealthCenter").Order("name").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	search := strings.TrimSpace(c.Query("search"))
	if search != "" {
		doctors = filterDoctors(doctors, search)
	}

	utils.Success(c, "Doctors fetched successfully", doctors)
}

func filterDoctors(doctors []models.Doctor, term string) []models.Doctor {
	term = strings.ToLower(term)
	filtered := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Specialization), term) ||
			strings.Contains(strings.ToLower(d.HealthCenter.City), term) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// GetDoctorByID returns a single doctor with its health center. The booking
// form loads this before an appointment can be created.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.Preload("HealthCenter").First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Doctor fetched successfully", doctor)
}
