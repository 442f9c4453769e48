package doctorRepo

import (
	"errors"

	"medibook/models"
)

// ErrNotFound is returned when a doctor id does not resolve to a document.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines data access for doctor directory entries. It is
// the availability resolver's schedule store: the resolver only ever calls
// GetByID and reads the weekly availability template from the result.
type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	GetByID(id string) (*models.Doctor, error)
	GetAll(specialty string) ([]models.Doctor, error)
	Update(doctor *models.Doctor) error
	UpdateWeeklyAvailability(id string, weekly models.WeeklyAvailability) (*models.Doctor, error)
	Delete(id string) error
}
