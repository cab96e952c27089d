package locations

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/homebase-apps/saved-locations-api/internal/domain"
	clockport "github.com/homebase-apps/saved-locations-api/internal/ports/out/clock"
	"github.com/homebase-apps/saved-locations-api/internal/ports/out/locationrepo"
)

type Service struct {
	repo locationrepo.Repository
	clk  clockport.Clock

	newLocationID func() domain.LocationID
}

func NewService(repo locationrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newLocationID: func() domain.LocationID {
			return domain.LocationID(uuid.NewString())
		},
	}
}

// ListLocations returns every saved location across all owners.
//
// The caller identity is accepted so owner scoping can be added without
// changing callers, but current policy shares the full list with any
// authenticated caller.
func (s *Service) ListLocations(ctx context.Context, caller domain.Identity) ([]domain.Location, error) {
	_ = caller
	ls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Location, 0, len(ls))
	for _, l := range ls {
		out = append(out, toDomain(l))
	}
	return out, nil
}

// SaveLocation persists a new location owned by the caller.
//
// OwnerSubject and OwnerEmail are stamped from caller, never from input.
func (s *Service) SaveLocation(ctx context.Context, caller domain.Identity, in SaveLocationInput) (domain.Location, error) {
	l := locationrepo.Location{
		ID:           s.newLocationID(),
		Tag:          in.Tag,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		PlaceID:      in.PlaceID,
		OwnerSubject: caller.Subject,
		OwnerEmail:   caller.Email,
		CreatedAt:    s.clk.Now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return domain.Location{}, err
	}
	return toDomain(l), nil
}

// DeleteLocation removes the record with the given id.
//
// Ownership is not checked before deleting (current policy; see the
// repository contract). A missing record maps to a 404 application error.
func (s *Service) DeleteLocation(ctx context.Context, caller domain.Identity, id domain.LocationID) error {
	_ = caller
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, locationrepo.ErrNotFound) {
			return &Error{
				Status:  http.StatusNotFound,
				Code:    "LOCATION_NOT_FOUND",
				Message: "Location not found",
			}
		}
		return err
	}
	return nil
}

func toDomain(l locationrepo.Location) domain.Location {
	return domain.Location{
		ID:           l.ID,
		Tag:          l.Tag,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		PlaceID:      l.PlaceID,
		OwnerSubject: l.OwnerSubject,
		OwnerEmail:   l.OwnerEmail,
		CreatedAt:    l.CreatedAt,
	}
}
