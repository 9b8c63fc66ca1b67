package entity

import "time"

// Contact is a person in a user's address book.
// Only FirstName is mandatory; the remaining fields are nil when unknown.
type Contact struct {
	ID        int64
	Username  string // Owner of the contact.
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the contact belongs to the given username.
func (c *Contact) OwnedBy(username string) bool {
	return c.Username == username
}
