package model

import (
	"time"
)

// ContactModel mirrors the 'contacts' table. Username references users.username.
type ContactModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Username  string  `gorm:"type:varchar(100);not null;index"`
	FirstName string  `gorm:"type:varchar(100);not null"`
	LastName  *string `gorm:"type:varchar(100)"`
	Email     *string `gorm:"type:varchar(100)"`
	Phone     *string `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
