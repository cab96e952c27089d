package locationrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/homebase-apps/saved-locations-api/internal/adapters/postgres"
	"github.com/homebase-apps/saved-locations-api/internal/domain"
	"github.com/homebase-apps/saved-locations-api/internal/ports/out/locationrepo"
)

// Repo is a Postgres implementation of locationrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]locationrepo.Location, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, tag, latitude, longitude, place_id, owner_subject, owner_email, created_at
		FROM locations
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]locationrepo.Location, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			ownerSubject string
			l            locationrepo.Location
		)
		if err := rows.Scan(&id, &l.Tag, &l.Latitude, &l.Longitude, &l.PlaceID, &ownerSubject, &l.OwnerEmail, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.ID = domain.LocationID(id.String())
		l.OwnerSubject = domain.SubjectID(ownerSubject)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) Create(ctx context.Context, l locationrepo.Location) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	locUUID, err := uuid.Parse(string(l.ID))
	if err != nil {
		return fmt.Errorf("invalid location id: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO locations (
			id,
			tag,
			latitude,
			longitude,
			place_id,
			owner_subject,
			owner_email,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		locUUID,
		l.Tag,
		l.Latitude,
		l.Longitude,
		l.PlaceID,
		string(l.OwnerSubject),
		l.OwnerEmail,
		l.CreatedAt.UTC(),
	)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return locationrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) DeleteByID(ctx context.Context, id domain.LocationID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	locUUID, err := uuid.Parse(string(id))
	if err != nil {
		// Non-UUID ids cannot exist in this backend.
		return locationrepo.ErrNotFound
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE id = $1`, locUUID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return locationrepo.ErrNotFound
	}
	return nil
}
