package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact statuses (set by delivery events, not by direct user edit)
const (
	ContactStatusActive       = "active"
	ContactStatusReplied      = "replied"
	ContactStatusUnsubscribed = "unsubscribed"
	ContactStatusBounced      = "bounced"
)

// ContactList represents a named list of contacts
type ContactList struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"` // manual, csv, api

	// Statistics
	ContactCount int `gorm:"default:0" json:"contact_count"`
	ActiveCount  int `gorm:"default:0" json:"active_count"`
	BouncedCount int `gorm:"default:0" json:"bounced_count"`

	// Relations
	Contacts []Contact `gorm:"foreignKey:ContactListID" json:"contacts,omitempty"`
}

// Contact represents a single outreach contact
type Contact struct {
	gorm.Model
	UserID        uint  `gorm:"not null;index" json:"user_id"`
	ContactListID *uint `gorm:"index" json:"contact_list_id"`

	Email     string `gorm:"not null;index" json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Location  string `json:"location"`

	// Status is driven by delivery events
	Status string `gorm:"default:'active'" json:"status"` // active, replied, unsubscribed, bounced

	// CampaignName is a reference, not ownership
	CampaignName  string     `gorm:"index" json:"campaign_name"`
	LastContacted *time.Time `json:"last_contacted"`
}
