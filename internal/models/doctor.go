package models

// HealthCenter is a clinical location doctors practice at.
type HealthCenter struct {
	BaseModel
	Name  string `gorm:"size:255;not null" json:"name"`
	City  string `gorm:"size:100" json:"city"`
	State string `gorm:"size:100" json:"state"`

	Doctors []Doctor `gorm:"foreignKey:HealthCenterID" json:"-"`
}

// Doctor represents a doctor listed in the directory. UserID links the row to
// the auth identity behind the doctor portal; directory-only doctors may have
// no identity.
type Doctor struct {
	BaseModel
	UserID            *string `gorm:"size:36;index" json:"userId,omitempty"`
	Name              string  `gorm:"size:255;not null" json:"name"`
	Specialization    string  `gorm:"size:255;not null" json:"specialization"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	ConsultationFee   float64 `json:"consultationFee"`
	Email             string  `gorm:"size:255" json:"email"`
	Phone             string  `gorm:"size:30" json:"phone"`
	HealthCenterID    string  `gorm:"size:36;index" json:"healthCenterId"`

	HealthCenter HealthCenter  `gorm:"foreignKey:HealthCenterID" json:"healthCenter"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}
