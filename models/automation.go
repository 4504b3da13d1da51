package models

import "gorm.io/gorm"

// AutomationRule is a display-level deliverability rule with an on/off
// switch. There is no evaluation engine behind it; run counters are
// updated by external delivery events.
type AutomationRule struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Trigger     string `gorm:"not null" json:"trigger"`
	Action      string `gorm:"not null" json:"action"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`

	RunCount int `gorm:"default:0" json:"run_count"`
}
