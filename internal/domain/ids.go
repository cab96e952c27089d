package domain

// SubjectID is the authenticated subject extracted from token claims (typically "sub").
// We model it as an opaque identifier: its format is controlled by the IdP.
type SubjectID string

// LocationID is an internal identifier for a saved location record.
type LocationID string
