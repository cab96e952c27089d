package locations

// SaveLocationInput carries the validated fields of a create request.
// Owner attribution is deliberately absent: it always comes from the
// authenticated identity, never from input.
type SaveLocationInput struct {
	Tag       string
	Latitude  float64
	Longitude float64
	PlaceID   string
}
