package service

// TokenGenerator issues opaque session tokens.
// Tokens carry no claims; the stored value on the user row is the only source of truth.
type TokenGenerator interface {
	// Generate returns a new unguessable token.
	Generate() (string, error)
}
