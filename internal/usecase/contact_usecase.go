package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// CreateContactInput holds the fields of a new contact.
type CreateContactInput struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitnil,max=100"`
	Email     *string `json:"email" validate:"omitnil,max=100,email"`
	Phone     *string `json:"phone" validate:"omitnil,max=20"`
}

// UpdateContactInput replaces first_name and any optional field present in the request.
type UpdateContactInput struct {
	ID        int64   `json:"id" validate:"gte=1"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitnil,max=100"`
	Email     *string `json:"email" validate:"omitnil,max=100,email"`
	Phone     *string `json:"phone" validate:"omitnil,max=20"`
}

// SearchContactInput holds optional substring criteria and paging.
// A zero Page or Size falls back to the defaults.
type SearchContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  int    `json:"page" validate:"gte=0"`
	Size  int    `json:"size" validate:"gte=0"`
}

// ContactResponse is the public view of a contact. Absent optional fields render as null.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// SearchContactOutput is one page of search results.
type SearchContactOutput struct {
	Data   []*ContactResponse
	Paging entity.Paging
}

// ContactUsecase defines contact operations. Every call is scoped to user.
type ContactUsecase interface {
	Create(ctx context.Context, user *entity.User, input *CreateContactInput) (*ContactResponse, error)
	Get(ctx context.Context, user *entity.User, id int64) (*ContactResponse, error)
	Update(ctx context.Context, user *entity.User, input *UpdateContactInput) (*ContactResponse, error)
	Delete(ctx context.Context, user *entity.User, id int64) (*ContactResponse, error)
	Search(ctx context.Context, user *entity.User, input *SearchContactInput) (*SearchContactOutput, error)

	// QRCode renders the contact as a vCard QR code PNG.
	QRCode(ctx context.Context, user *entity.User, id int64) ([]byte, error)
}

// NewContactResponse maps a contact entity to its response.
func NewContactResponse(contact *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
