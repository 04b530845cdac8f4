package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tipsybean/tipsybean-backend-go/models"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

// ProfileService owns the durable delivery-address and personal-detail
// record. The profile outlives a logout.
type ProfileService struct {
	profiles store.ProfileStore
}

func NewProfileService(profiles store.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// ProfileUpdate carries the fields of a profile write. Empty fields are
// treated as not provided and leave the stored value untouched, so an
// email-only update cannot clear address fields.
type ProfileUpdate struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// Profile returns the stored record, or an empty record keyed by the
// user when nothing has been saved yet.
func (s *ProfileService) Profile(ctx context.Context, email string) (models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.Profile{Email: email}, nil
	}
	return profile, err
}

// UpdateProfile validates the provided fields in a fixed order (names,
// contact, then address) and aborts on the first failure with that
// single message. On success the provided fields are merged into the
// existing record and updatedAt is stamped.
//
// Name fields use the relaxed length-only check on this path; the strict
// charset check belongs to signup.
func (s *ProfileService) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (models.Profile, error) {
	if update.FirstName != "" {
		if err := ValidateFirstName(update.FirstName, false); err != nil {
			return models.Profile{}, err
		}
	}
	if update.LastName != "" {
		if err := ValidateLastName(update.LastName, false); err != nil {
			return models.Profile{}, err
		}
	}
	if update.MobileNumber != "" {
		if err := ValidateMobileNumber(update.MobileNumber); err != nil {
			return models.Profile{}, err
		}
	}
	if update.Email != "" {
		if err := ValidateEmail(update.Email); err != nil {
			return models.Profile{}, err
		}
	}
	if update.Street != "" {
		if err := ValidateStreet(update.Street); err != nil {
			return models.Profile{}, err
		}
	}
	if update.City != "" {
		if err := ValidateCity(update.City); err != nil {
			return models.Profile{}, err
		}
	}
	if update.Province != "" {
		if err := ValidateProvince(update.Province); err != nil {
			return models.Profile{}, err
		}
	}
	if update.PostalCode != "" {
		if err := ValidatePostalCode(update.PostalCode); err != nil {
			return models.Profile{}, err
		}
	}
	if update.Country != "" {
		if err := ValidateCountry(update.Country); err != nil {
			return models.Profile{}, err
		}
	}

	profile, err := s.Profile(ctx, email)
	if err != nil {
		return models.Profile{}, err
	}

	merge(&profile.FirstName, update.FirstName)
	merge(&profile.LastName, update.LastName)
	merge(&profile.MobileNumber, update.MobileNumber)
	merge(&profile.Street, update.Street)
	merge(&profile.City, update.City)
	merge(&profile.Province, update.Province)
	merge(&profile.PostalCode, update.PostalCode)
	merge(&profile.Country, update.Country)
	profile.UpdatedAt = time.Now()

	if err := s.profiles.UpsertProfile(ctx, profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func merge(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}
