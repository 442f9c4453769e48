package doctor

import (
	"testing"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	byID    map[string]*models.Doctor
	listed  []models.Doctor
	created *models.Doctor
}

func (f *fakeDoctorRepo) Create(d *models.Doctor) error {
	f.created = d
	return nil
}
func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	return d, nil
}
func (f *fakeDoctorRepo) GetAll(string) ([]models.Doctor, error) { return f.listed, nil }
func (f *fakeDoctorRepo) Update(*models.Doctor) error            { return nil }
func (f *fakeDoctorRepo) UpdateWeeklyAvailability(id string, weekly models.WeeklyAvailability) (*models.Doctor, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	d.WeeklyAvailability = weekly
	return d, nil
}
func (f *fakeDoctorRepo) Delete(string) error { return nil }

func TestCreateDoctorDefaults(t *testing.T) {
	repo := &fakeDoctorRepo{}
	svc := &DefaultDoctorService{Repo: repo}

	created, err := svc.CreateDoctor(&models.Doctor{
		Profile: models.DoctorProfile{Name: "Dr. Adaeze Obi", Specialty: "cardiology"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "active", created.Profile.Status)
	assert.Len(t, created.WeeklyAvailability, 7, "new doctors get the seed template")
	assert.False(t, created.WeeklyAvailability["sunday"].Available)
	assert.Same(t, created, repo.created)
}

func TestCreateDoctorRejectsBadWeekday(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &fakeDoctorRepo{}}

	_, err := svc.CreateDoctor(&models.Doctor{
		Profile: models.DoctorProfile{Name: "Dr. Obi"},
		WeeklyAvailability: models.WeeklyAvailability{
			"mondey": {Available: true},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mondey")
}

func TestListDoctorsWithoutCache(t *testing.T) {
	repo := &fakeDoctorRepo{listed: []models.Doctor{{ID: "doc-1"}, {ID: "doc-2"}}}
	svc := &DefaultDoctorService{Repo: repo}

	doctors, err := svc.ListDoctors("")
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}

func TestUpdateWeeklyAvailability(t *testing.T) {
	repo := &fakeDoctorRepo{byID: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Profile: models.DoctorProfile{Specialty: "dermatology"}},
	}}
	svc := &DefaultDoctorService{Repo: repo}

	weekly := models.WeeklyAvailability{
		"monday": {Available: true, TimeSlots: []models.TimeRange{{StartTime: "9:00 AM", EndTime: "1:00 PM"}}},
		"sunday": {Available: false},
	}
	updated, err := svc.UpdateWeeklyAvailability("doc-1", weekly)
	require.NoError(t, err)
	assert.Equal(t, weekly, updated.WeeklyAvailability)

	_, err = svc.UpdateWeeklyAvailability("ghost", weekly)
	assert.ErrorIs(t, err, doctorRepo.ErrNotFound)
}
