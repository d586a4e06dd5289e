package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"telehealth-connect-server/internal/config"
	"telehealth-connect-server/internal/models"
)

// Seeds health centers and doctors for local development. Doctors get a
// portal account with the password "password123".
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	centers, err := seedHealthCenters(db, 5)
	if err != nil {
		log.Fatalf("seed health centers: %v", err)
	}
	if err := seedDoctors(db, centers, 25); err != nil {
		log.Fatalf("seed doctors: %v", err)
	}

	log.Println("seed complete")
}

func seedHealthCenters(db *gorm.DB, count int) ([]models.HealthCenter, error) {
	log.Printf("seeding %d health centers", count)

	centers := make([]models.HealthCenter, 0, count)
	for i := 0; i < count; i++ {
		center := models.HealthCenter{
			Name:  gofakeit.Company() + " Medical Center",
			City:  gofakeit.City(),
			State: gofakeit.State(),
		}
		if err := db.Create(&center).Error; err != nil {
			return nil, err
		}
		centers = append(centers, center)
	}

	log.Println("health centers seeded")
	return centers, nil
}

func seedDoctors(db *gorm.DB, centers []models.HealthCenter, count int) error {
	log.Printf("seeding %d doctors", count)

	specializations := []string{
		"Dermatology",
		"Cardiology",
		"General Practice",
		"Orthopedics",
		"Endocrinology",
		"Neurology",
		"Pediatrics",
		"Psychiatry",
		"Ophthalmology",
		"ENT",
	}

	for i := 0; i < count; i++ {
		name := gofakeit.Name()
		email := gofakeit.Email()
		center := centers[gofakeit.Number(0, len(centers)-1)]

		err := db.Transaction(func(tx *gorm.DB) error {
			user := models.User{Email: email}
			if err := user.SetPassword("password123"); err != nil {
				return err
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.Profile{
				ID:       user.ID,
				FullName: "Dr. " + name,
				Phone:    gofakeit.Phone(),
			}).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.UserRole{
				UserID: user.ID,
				Role:   models.RoleDoctor,
			}).Error; err != nil {
				return err
			}

			doctor := models.Doctor{
				UserID:            &user.ID,
				Name:              "Dr. " + name,
				Specialization:    specializations[gofakeit.Number(0, len(specializations)-1)],
				YearsOfExperience: gofakeit.Number(1, 35),
				ConsultationFee:   float64(gofakeit.Number(40, 300)),
				Email:             email,
				Phone:             gofakeit.Phone(),
				HealthCenterID:    center.ID,
			}
			return tx.Create(&doctor).Error
		})
		if err != nil {
			return fmt.Errorf("doctor %d: %w", i, err)
		}
	}

	log.Println("doctors seeded")
	return nil
}
