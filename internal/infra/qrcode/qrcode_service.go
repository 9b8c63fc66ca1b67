package qrcode

import (
	"fmt"
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactQR renders the contact's vCard as a PNG QR code
func (s *qrcodeService) GenerateContactQR(contact *entity.Contact) ([]byte, error) {
	qrCode, err := qrcode.New(VCard(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// VCard formats the contact as a vCard 3.0 document.
// Absent optional fields are omitted.
func VCard(contact *entity.Contact) string {
	lastName := deref(contact.LastName)

	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	fmt.Fprintf(&b, "N:%s;%s;;;\r\n", escape(lastName), escape(contact.FirstName))
	fmt.Fprintf(&b, "FN:%s\r\n", escape(strings.TrimSpace(contact.FirstName+" "+lastName)))
	if email := deref(contact.Email); email != "" {
		fmt.Fprintf(&b, "EMAIL;TYPE=INTERNET:%s\r\n", escape(email))
	}
	if phone := deref(contact.Phone); phone != "" {
		fmt.Fprintf(&b, "TEL;TYPE=CELL:%s\r\n", escape(phone))
	}
	b.WriteString("END:VCARD\r\n")

	return b.String()
}

//nolint:gochecknoglobals
var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)

func escape(value string) string {
	return vcardEscaper.Replace(value)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
