package booking

import (
	"testing"
	"time"

	bookingRepo "medibook/database/repository/booking"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = time.Date(2025, time.June, 2, 8, 0, 0, 0, time.Local)

type fakeDoctorRepo struct {
	ids map[string]bool
}

func (f *fakeDoctorRepo) Create(*models.Doctor) error { return nil }
func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	if !f.ids[id] {
		return nil, doctorRepo.ErrNotFound
	}
	return &models.Doctor{ID: id}, nil
}
func (f *fakeDoctorRepo) GetAll(string) ([]models.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) Update(*models.Doctor) error            { return nil }
func (f *fakeDoctorRepo) UpdateWeeklyAvailability(string, models.WeeklyAvailability) (*models.Doctor, error) {
	return nil, nil
}
func (f *fakeDoctorRepo) Delete(string) error { return nil }

type fakeBookingRepo struct {
	created   []*models.Booking
	createErr error
	byID      map[string]*models.Booking
	updated   *models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, b)
	return nil
}
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return b, nil
}
func (f *fakeBookingRepo) ListByDoctorBetween(string, time.Time, time.Time, []string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByPatient(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) ListByDoctor(string) ([]models.Booking, error)  { return nil, nil }
func (f *fakeBookingRepo) UpdateStatus(id, status, reason string) (*models.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	updated := *b
	updated.Status = status
	updated.Reason = reason
	f.updated = &updated
	return &updated, nil
}
func (f *fakeBookingRepo) MarkCompletedBefore(time.Time) (int64, error) { return 0, nil }

func newService(repo *fakeBookingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:    repo,
		Doctors: &fakeDoctorRepo{ids: map[string]bool{"doc-1": true}},
		Now:     func() time.Time { return clock },
	}
}

func TestCreateBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newService(repo)

	start := time.Date(2025, time.June, 3, 9, 15, 0, 0, time.Local)
	created, err := svc.CreateBooking(models.BookingInput{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		SlotStart: start,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, "2025-06-03", created.Date)
	assert.Equal(t, start.Add(15*time.Minute), created.SlotEnd)
	require.Len(t, repo.created, 1)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   models.BookingInput
		wantErr error
	}{
		{
			name: "unknown doctor",
			input: models.BookingInput{
				DoctorID: "ghost", PatientID: "pat-1",
				SlotStart: time.Date(2025, time.June, 3, 9, 0, 0, 0, time.Local),
			},
			wantErr: ErrDoctorNotFound,
		},
		{
			name: "unaligned slot start",
			input: models.BookingInput{
				DoctorID: "doc-1", PatientID: "pat-1",
				SlotStart: time.Date(2025, time.June, 3, 9, 10, 0, 0, time.Local),
			},
			wantErr: ErrInvalidSlot,
		},
		{
			name: "slot in the past",
			input: models.BookingInput{
				DoctorID: "doc-1", PatientID: "pat-1",
				SlotStart: time.Date(2025, time.June, 1, 9, 0, 0, 0, time.Local),
			},
			wantErr: ErrInvalidSlot,
		},
		{
			name: "slot beyond booking window",
			input: models.BookingInput{
				DoctorID: "doc-1", PatientID: "pat-1",
				SlotStart: time.Date(2025, time.June, 18, 9, 0, 0, 0, time.Local),
			},
			wantErr: ErrInvalidSlot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(&fakeBookingRepo{}).CreateBooking(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBookingSlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	svc := newService(repo)

	_, err := svc.CreateBooking(models.BookingInput{
		DoctorID: "doc-1", PatientID: "pat-1",
		SlotStart: time.Date(2025, time.June, 3, 9, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from string
		to   string
		ok   bool
	}{
		{models.BookingStatusPending, models.BookingStatusBooked, true},
		{models.BookingStatusPending, models.BookingStatusRejected, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusBooked, models.BookingStatusCancelled, true},
		{models.BookingStatusBooked, models.BookingStatusCompleted, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusCancelled, models.BookingStatusBooked, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusRejected, models.BookingStatusBooked, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			repo := &fakeBookingRepo{byID: map[string]*models.Booking{
				"b1": {ID: "b1", Status: tt.from},
			}}
			updated, err := newService(repo).UpdateBookingStatus("b1", tt.to, "")
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, updated.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestCancelBooking(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[string]*models.Booking{
		"b1": {ID: "b1", Status: models.BookingStatusPending},
	}}
	cancelled, err := newService(repo).CancelBooking("b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	_, err = newService(repo).CancelBooking("missing")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}
