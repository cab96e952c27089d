package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/homebase-apps/saved-locations-api/internal/domain"
	locationrepoport "github.com/homebase-apps/saved-locations-api/internal/ports/out/locationrepo"
)

type CleanupFunc = func()

type LocationRepoFactory func(t *testing.T) (locationrepoport.Repository, CleanupFunc)

// RunLocationRepo exercises the behavior every locationrepo.Repository
// implementation must share. Each subtest receives a fresh repository.
func RunLocationRepo(t *testing.T, newRepo LocationRepoFactory) {
	t.Helper()

	open := func(t *testing.T) locationrepoport.Repository {
		t.Helper()
		repo, cleanup := newRepo(t)
		if cleanup != nil {
			t.Cleanup(cleanup)
		}
		return repo
	}

	t.Run("CreateThenListRoundTrip", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t)

		want := locationrepoport.Location{
			ID:           domain.LocationID(uuid.NewString()),
			Tag:          "home",
			Latitude:     40.7,
			Longitude:    -74.0,
			PlaceID:      "abc123",
			OwnerSubject: "u1",
			OwnerEmail:   "u1@x.com",
			CreatedAt:    time.Unix(1000, 0).UTC(),
		}
		if err := repo.Create(ctx, want); err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len=%d, want 1", len(got))
		}
		g := got[0]
		if g.ID != want.ID || g.Tag != want.Tag || g.Latitude != want.Latitude ||
			g.Longitude != want.Longitude || g.PlaceID != want.PlaceID ||
			g.OwnerSubject != want.OwnerSubject || g.OwnerEmail != want.OwnerEmail {
			t.Fatalf("got=%+v want=%+v", g, want)
		}
		if !g.CreatedAt.Equal(want.CreatedAt) {
			t.Fatalf("createdAt=%v, want %v", g.CreatedAt, want.CreatedAt)
		}
	})

	t.Run("ListSpansOwnersAndOrdersByCreatedAt", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t)

		first := locationrepoport.Location{
			ID: domain.LocationID(uuid.NewString()), Tag: "office",
			Latitude: 51.5, Longitude: -0.1, PlaceID: "p-office",
			OwnerSubject: "u1", OwnerEmail: "u1@x.com",
			CreatedAt: time.Unix(100, 0).UTC(),
		}
		second := locationrepoport.Location{
			ID: domain.LocationID(uuid.NewString()), Tag: "gym",
			Latitude: 48.8, Longitude: 2.3, PlaceID: "p-gym",
			OwnerSubject: "u2", OwnerEmail: "u2@x.com",
			CreatedAt: time.Unix(200, 0).UTC(),
		}

		// Insert out of order; List must sort by CreatedAt.
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len=%d, want 2", len(got))
		}
		if got[0].ID != first.ID || got[1].ID != second.ID {
			t.Fatalf("order=[%s %s], want [%s %s]", got[0].ID, got[1].ID, first.ID, second.ID)
		}
		if got[0].OwnerSubject != "u1" || got[1].OwnerSubject != "u2" {
			t.Fatalf("owners=[%s %s], want both owners visible", got[0].OwnerSubject, got[1].OwnerSubject)
		}
	})

	t.Run("CreateDuplicateID", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t)

		l := locationrepoport.Location{
			ID: domain.LocationID(uuid.NewString()), Tag: "home",
			Latitude: 1, Longitude: 2, PlaceID: "p1",
			OwnerSubject: "u1", OwnerEmail: "u1@x.com",
			CreatedAt: time.Unix(100, 0).UTC(),
		}
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.Create(ctx, l); !errors.Is(err, locationrepoport.ErrAlreadyExists) {
			t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
		}
	})

	t.Run("DeleteRemovesAndSecondDeleteIsNotFound", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t)

		l := locationrepoport.Location{
			ID: domain.LocationID(uuid.NewString()), Tag: "cabin",
			Latitude: 59.9, Longitude: 10.7, PlaceID: "p-cabin",
			OwnerSubject: "u1", OwnerEmail: "u1@x.com",
			CreatedAt: time.Unix(100, 0).UTC(),
		}
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}

		if err := repo.DeleteByID(ctx, l.ID); err != nil {
			t.Fatalf("DeleteByID: %v", err)
		}
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("len=%d after delete, want 0", len(got))
		}

		if err := repo.DeleteByID(ctx, l.ID); !errors.Is(err, locationrepoport.ErrNotFound) {
			t.Fatalf("second DeleteByID err=%v, want ErrNotFound", err)
		}
	})

	t.Run("DeleteUnknownID", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t)

		if err := repo.DeleteByID(ctx, domain.LocationID(uuid.NewString())); !errors.Is(err, locationrepoport.ErrNotFound) {
			t.Fatalf("DeleteByID err=%v, want ErrNotFound", err)
		}
	})
}
