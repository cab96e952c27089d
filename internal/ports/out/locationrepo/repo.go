package locationrepo

import (
	"context"
	"time"

	"github.com/homebase-apps/saved-locations-api/internal/domain"
)

// Location is the persistence shape used by the location repository.
// It is not an HTTP DTO.
type Location struct {
	ID domain.LocationID

	Tag       string
	Latitude  float64
	Longitude float64
	PlaceID   string

	OwnerSubject domain.SubjectID
	OwnerEmail   string

	CreatedAt time.Time
}

// Repository provides access to persisted locations.
//
// Scoping contract (current policy, carried over from the original system):
// - List returns every owner's records to any caller.
// - DeleteByID does not check that the caller owns the record.
//
// List results are ordered by CreatedAt ascending, with ID as the tie-breaker,
// so responses are deterministic under equal timestamps.
type Repository interface {
	List(ctx context.Context) ([]Location, error)
	Create(ctx context.Context, l Location) error

	// DeleteByID removes the record with the given id.
	// Returns ErrNotFound when no such record exists; a concurrent delete of
	// the same id resolves the loser to ErrNotFound.
	DeleteByID(ctx context.Context, id domain.LocationID) error
}
