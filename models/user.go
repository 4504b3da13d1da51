package models

import (
	"gorm.io/gorm"
)

// User represents a user account in the system
type User struct {
	gorm.Model

	// Authentication fields
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Profile information
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Company   string `json:"company"`
	Timezone  string `gorm:"default:'UTC'" json:"timezone"`

	// Account status
	Role     string `gorm:"default:'user'" json:"role"` // user, admin
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relations
	Campaigns     []Campaign     `gorm:"foreignKey:UserID" json:"campaigns,omitempty"`
	ContactLists  []ContactList  `gorm:"foreignKey:UserID" json:"contact_lists,omitempty"`
	EmailAccounts []EmailAccount `gorm:"foreignKey:UserID" json:"email_accounts,omitempty"`
}
