package service

import (
	"contacts/internal/domain/entity"
)

// QRCodeService renders shareable QR codes
type QRCodeService interface {
	// GenerateContactQR encodes the contact as a vCard and returns a PNG image
	GenerateContactQR(contact *entity.Contact) ([]byte, error)
}
