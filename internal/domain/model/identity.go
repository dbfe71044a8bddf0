package model

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID    string
	SessionID string
	RoleID    string
	Claims    map[string]any
}
