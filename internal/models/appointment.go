package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked consultation. Dates are stored as
// YYYY-MM-DD and times as HH:MM strings, so lexicographic order is
// chronological order.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID        string            `gorm:"size:36;index;not null" json:"doctorId"`
	AppointmentDate string            `gorm:"size:10;not null" json:"appointmentDate"`
	AppointmentTime string            `gorm:"size:5;not null" json:"appointmentTime"`
	Status          AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	Reason          string            `gorm:"size:255" json:"reason"`
	Notes           *string           `gorm:"type:text" json:"notes"`

	// Relations
	Patient Profile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}
