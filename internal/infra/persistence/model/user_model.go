// Package model holds the GORM mappings of the database tables.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The username is the natural key.
type UserModel struct {
	Username  string  `gorm:"type:varchar(100);primaryKey"`
	Password  string  `gorm:"type:varchar(100);not null"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Token     *string `gorm:"type:varchar(100);index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Contacts []ContactModel `gorm:"foreignKey:Username;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
