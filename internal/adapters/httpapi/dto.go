package httpapi

import (
	"time"

	"github.com/homebase-apps/saved-locations-api/internal/domain"
)

// Response envelopes. Every body carries "ok"; failures carry a generic
// message so internal detail never leaks to clients.

type errorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	OK     bool         `json:"ok"`
	Errors []fieldError `json:"errors"`
}

type locationJSON struct {
	ID           string    `json:"id"`
	Tag          string    `json:"tag"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	PlaceID      string    `json:"placeId"`
	OwnerSubject string    `json:"ownerSubjectId"`
	OwnerEmail   string    `json:"ownerEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

type listLocationsResponse struct {
	OK        bool           `json:"ok"`
	Locations []locationJSON `json:"locations"`
}

type saveLocationResponse struct {
	OK       bool         `json:"ok"`
	Location locationJSON `json:"location"`
}

type deleteLocationResponse struct {
	OK bool `json:"ok"`
}

func locationFromDomain(l domain.Location) locationJSON {
	return locationJSON{
		ID:           string(l.ID),
		Tag:          l.Tag,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		PlaceID:      l.PlaceID,
		OwnerSubject: string(l.OwnerSubject),
		OwnerEmail:   l.OwnerEmail,
		CreatedAt:    l.CreatedAt,
	}
}
