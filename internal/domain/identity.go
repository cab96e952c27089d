package domain

// Identity is the trusted per-request identity derived from decoded token claims.
// It is constructed once by the identity middleware, carried in the request
// context, and never persisted.
type Identity struct {
	Subject SubjectID
	Email   string
}
