// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns contacts. Username is the natural key.
type User struct {
	Username  string    // Unique login name, also the owner key of contacts.
	Password  string    // bcrypt hash of the password, never the plaintext.
	Name      string    // Display name.
	Token     *string   // Active session token; nil when logged out.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasToken reports whether the user currently holds a session token.
func (u *User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}
