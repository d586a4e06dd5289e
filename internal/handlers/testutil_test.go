package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"telehealth-connect-server/internal/config"
	"telehealth-connect-server/internal/models"
	"telehealth-connect-server/internal/routes"
	"telehealth-connect-server/internal/utils"
)

var dbCounter int64

func testConfig() *config.Config {
	return &config.Config{
		Port:                      "0",
		Environment:               "development",
		JWTSecret:                 "test_jwt_secret",
		JWTRefreshSecret:          "test_refresh_secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 1,
	}
}

// newTestServer builds a router against a fresh in-memory database.
func newTestServer(t *testing.T) (*gorm.DB, *gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	n := atomic.AddInt64(&dbCounter, 1)
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := testConfig()
	router := gin.New()
	routes.SetupRoutes(router, db, cfg)
	return db, router, cfg
}

// createAccount creates a user with a profile and role and returns the user
// plus a signed access token.
func createAccount(t *testing.T, db *gorm.DB, cfg *config.Config, email, fullName string, role models.Role) (models.User, string) {
	t.Helper()

	user := models.User{Email: email}
	if err := user.SetPassword("password123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Create(&models.Profile{ID: user.ID, FullName: fullName, Phone: "555-0100"}).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if err := db.Create(&models.UserRole{UserID: user.ID, Role: role}).Error; err != nil {
		t.Fatalf("create user role: %v", err)
	}

	token, _, err := utils.GenerateTokens(&user, role, cfg)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func createHealthCenter(t *testing.T, db *gorm.DB, name, city, state string) models.HealthCenter {
	t.Helper()
	center := models.HealthCenter{Name: name, City: city, State: state}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("create health center: %v", err)
	}
	return center
}

func createDoctor(t *testing.T, db *gorm.DB, name, specialization string, center models.HealthCenter, userID *string) models.Doctor {
	t.Helper()
	doctor := models.Doctor{
		UserID:            userID,
		Name:              name,
		Specialization:    specialization,
		YearsOfExperience: 10,
		ConsultationFee:   120,
		Email:             "doctor@example.com",
		Phone:             "555-0101",
		HealthCenterID:    center.ID,
	}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return doctor
}

func createAppointment(t *testing.T, db *gorm.DB, patientID, doctorID, date, at string, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	appt := models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: at,
		Status:          status,
		Reason:          "Checkup",
	}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appt
}

// doRequest performs a JSON request against the router. An empty token skips
// the Authorization header.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope mirrors utils.ResponseData with raw data for per-test decoding.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response envelope: %v (body %q)", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode response data: %v (data %q)", err, string(env.Data))
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}
