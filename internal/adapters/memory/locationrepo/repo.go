package locationrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/homebase-apps/saved-locations-api/internal/domain"
	"github.com/homebase-apps/saved-locations-api/internal/ports/out/locationrepo"
)

// Repo is an in-memory implementation of locationrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.LocationID]locationrepo.Location
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.LocationID]locationrepo.Location),
	}
}

func (r *Repo) List(ctx context.Context) ([]locationrepo.Location, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]locationrepo.Location, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}
	sortLocations(out)
	return out, nil
}

func (r *Repo) Create(ctx context.Context, l locationrepo.Location) error {
	_ = ctx
	if l.ID == "" {
		return errors.New("empty location id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[l.ID]; ok {
		return locationrepo.ErrAlreadyExists
	}
	r.byID[l.ID] = l
	return nil
}

func (r *Repo) DeleteByID(ctx context.Context, id domain.LocationID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return locationrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func sortLocations(ls []locationrepo.Location) {
	sort.Slice(ls, func(i, j int) bool {
		a, b := ls[i], ls[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return string(a.ID) < string(b.ID)
	})
}
