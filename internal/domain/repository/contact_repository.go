package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrContactNotFound is returned when no contact matches both id and owner.
var ErrContactNotFound = errors.New("contact not found")

// ContactFilter holds the optional substring criteria of a contact search.
// Empty fields are not applied; the present ones are ANDed together.
type ContactFilter struct {
	Name  string // matches first_name OR last_name
	Email string
	Phone string
}

// IsEmpty reports whether no criteria are set.
func (f ContactFilter) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Phone == ""
}

// ContactRepository defines persistence operations for contacts.
// Every method is scoped by owner username so one user can never reach another's rows.
type ContactRepository interface {
	// Create persists a new contact and fills in its generated ID.
	Create(ctx context.Context, contact *entity.Contact) error

	// FindByIDAndOwner retrieves a contact by id owned by username.
	// Returns ErrContactNotFound when absent or owned by someone else.
	FindByIDAndOwner(ctx context.Context, id int64, username string) (*entity.Contact, error)

	// Update overwrites the mutable fields of a contact owned by contact.Username.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact by id owned by username.
	Delete(ctx context.Context, id int64, username string) error

	// Search returns one page of the owner's contacts matching filter, ordered by id.
	Search(ctx context.Context, username string, filter ContactFilter, offset, limit int) ([]*entity.Contact, error)

	// Count returns how many of the owner's contacts match filter.
	Count(ctx context.Context, username string, filter ContactFilter) (int64, error)
}
