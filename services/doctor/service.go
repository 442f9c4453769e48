package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"medibook/models"
	"medibook/services/availability"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	listCacheTTL    = 5 * time.Minute
	listCachePrefix = "doctors:"
)

// validWeekdays guards the weekly template keys: entries under misspelled
// day names would silently never match a resolved date.
var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// CreateDoctor registers a new directory entry.
func (s *DefaultDoctorService) CreateDoctor(doctor *models.Doctor) (*models.Doctor, error) {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	if doctor.Profile.Status == "" {
		doctor.Profile.Status = "active"
	}
	if len(doctor.WeeklyAvailability) == 0 {
		doctor.WeeklyAvailability = availability.DefaultWeeklyTemplate()
	}
	if err := validateWeekly(doctor.WeeklyAvailability); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	s.invalidateListCache(doctor.Profile.Specialty)
	return doctor, nil
}

// GetDoctorByID fetches a single directory entry.
func (s *DefaultDoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	return s.Repo.GetByID(id)
}

// ListDoctors returns the directory, optionally filtered by specialty. The
// listing is cached briefly in Redis; on any cache trouble we fall through to
// the database rather than failing the request.
func (s *DefaultDoctorService) ListDoctors(specialty string) ([]models.Doctor, error) {
	key := listCacheKey(specialty)
	ctx := context.Background()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var doctors []models.Doctor
			if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
				return doctors, nil
			}
		}
	}

	doctors, err := s.Repo.GetAll(specialty)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(doctors); err == nil {
			if err := s.Cache.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache doctor listing", zap.Error(err))
			}
		}
	}
	return doctors, nil
}

// UpdateDoctor replaces a doctor's profile document.
func (s *DefaultDoctorService) UpdateDoctor(doctor *models.Doctor) (*models.Doctor, error) {
	if err := validateWeekly(doctor.WeeklyAvailability); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(doctor); err != nil {
		return nil, err
	}
	s.invalidateListCache(doctor.Profile.Specialty)
	return doctor, nil
}

// UpdateWeeklyAvailability is the doctor-profile edit flow for the weekly
// template consumed by the availability resolver.
func (s *DefaultDoctorService) UpdateWeeklyAvailability(id string, weekly models.WeeklyAvailability) (*models.Doctor, error) {
	if err := validateWeekly(weekly); err != nil {
		return nil, err
	}
	doctor, err := s.Repo.UpdateWeeklyAvailability(id, weekly)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache(doctor.Profile.Specialty)
	return doctor, nil
}

// DeleteDoctor removes a directory entry.
func (s *DefaultDoctorService) DeleteDoctor(id string) error {
	doctor, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateListCache(doctor.Profile.Specialty)
	return nil
}

func validateWeekly(weekly models.WeeklyAvailability) error {
	for day := range weekly {
		if !validWeekdays[strings.ToLower(day)] {
			return fmt.Errorf("invalid weekday %q in weekly availability", day)
		}
	}
	return nil
}

func listCacheKey(specialty string) string {
	if specialty == "" {
		return listCachePrefix + "all"
	}
	return listCachePrefix + specialty
}

func (s *DefaultDoctorService) invalidateListCache(specialty string) {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	keys := []string{listCacheKey("")}
	if specialty != "" {
		keys = append(keys, listCacheKey(specialty))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate doctor listing cache", zap.Error(err))
	}
}
