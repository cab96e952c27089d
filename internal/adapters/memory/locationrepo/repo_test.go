package locationrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/homebase-apps/saved-locations-api/internal/ports/out/locationrepo"
)

func TestRepo_List_TieBreaksOnID(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	at := time.Unix(100, 0).UTC()

	b := locationrepo.Location{ID: "b", Tag: "office", Latitude: 1, Longitude: 2, PlaceID: "p2", OwnerSubject: "u1", OwnerEmail: "u1@x.com", CreatedAt: at}
	a := locationrepo.Location{ID: "a", Tag: "home", Latitude: 3, Longitude: 4, PlaceID: "p1", OwnerSubject: "u1", OwnerEmail: "u1@x.com", CreatedAt: at}

	_ = r.Create(context.Background(), b)
	_ = r.Create(context.Background(), a)

	got, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("order=[%s %s], want [a b]", got[0].ID, got[1].ID)
	}
}

func TestRepo_Create_EmptyIDRejected(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	err := r.Create(context.Background(), locationrepo.Location{Tag: "home"})
	if err == nil {
		t.Fatalf("expected error for empty ID")
	}
	// An empty ID is invalid input, not a duplicate.
	if errors.Is(err, locationrepo.ErrAlreadyExists) {
		t.Fatalf("err=%v, want a non-sentinel invalid-input error", err)
	}
	got, _ := r.List(context.Background())
	if len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}
