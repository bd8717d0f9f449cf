package handler

import (
	"fmt"
	"time"

	"github.com/fastbites/fastbites-api/internal/core/domain"
	"github.com/fastbites/fastbites-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProfileRequest) (ports.CreateProfileInput, error) {
	dob, err := parseDate(req.DOB)
	if err != nil {
		return ports.CreateProfileInput{}, err
	}
	return ports.CreateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		DOB:       dob,
		Role:      req.Role,
	}, nil
}

func toUpdateInput(req updateProfileRequest) (ports.UpdateProfileInput, error) {
	dob, err := parseDate(req.DOB)
	if err != nil {
		return ports.UpdateProfileInput{}, err
	}
	return ports.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		DOB:          dob,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
	}, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", *s)
	}
	return &t, nil
}

// --- Domain row → HTTP response ---

func toProfileResponse(u *domain.User) profileResponse {
	var dob *string
	if u.DOB != nil {
		formatted := time.Time(*u.DOB).Format(dateLayout)
		dob = &formatted
	}
	return profileResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		DOB:       dob,
		GoogleID:  u.GoogleID,
		Role:      u.Role,
		Address:   u.Address,
		City:      u.City,
		State:     u.State,
	}
}
