package doctor

import (
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/go-redis/redis/v8"
)

// DoctorService covers the doctor directory: browsing, profile management and
// the weekly availability edit flow (the only write path for templates).
type DoctorService interface {
	CreateDoctor(doctor *models.Doctor) (*models.Doctor, error)
	GetDoctorByID(id string) (*models.Doctor, error)
	ListDoctors(specialty string) ([]models.Doctor, error)
	UpdateDoctor(doctor *models.Doctor) (*models.Doctor, error)
	UpdateWeeklyAvailability(id string, weekly models.WeeklyAvailability) (*models.Doctor, error)
	DeleteDoctor(id string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo  doctorRepo.DoctorRepository
	Cache *redis.Client
}
