package domain

import "time"

// Location is a saved location bookmark.
//
// OwnerSubject and OwnerEmail are stamped from the creating request's Identity,
// never from client-supplied fields, and are immutable after creation. Records
// have no update operation: they are created once and removed by delete.
type Location struct {
	ID LocationID

	Tag       string
	Latitude  float64
	Longitude float64
	PlaceID   string

	OwnerSubject SubjectID
	OwnerEmail   string

	CreatedAt time.Time
}
