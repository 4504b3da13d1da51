package models

import (
	"time"

	"gorm.io/gorm"
)

// Email account providers and connection statuses
const (
	ProviderGmail   = "gmail"
	ProviderOutlook = "outlook"
	ProviderSMTP    = "smtp"

	AccountStatusConnected    = "connected"
	AccountStatusDisconnected = "disconnected"
	AccountStatusWarming      = "warming"
	AccountStatusError        = "error"
)

// EmailAccount represents a connected sending identity
type EmailAccount struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Address  string `gorm:"not null" json:"address"`
	FromName string `json:"from_name"`
	Provider string `gorm:"not null" json:"provider"` // gmail, outlook, smtp
	Status   string `gorm:"default:'disconnected'" json:"status"`

	// SMTP configuration (credentials stored, never dialed here)
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"-"`

	// Warmup state
	IsWarmingUp     bool       `gorm:"default:false" json:"is_warming_up"`
	WarmupStartedAt *time.Time `json:"warmup_started_at"`
	WarmupDays      int        `gorm:"default:0" json:"warmup_days"`

	// Usage metrics
	DailyLimit int `gorm:"default:50" json:"daily_limit"`
	SentToday  int `gorm:"default:0" json:"sent_today"`
	TotalSent  int `gorm:"default:0" json:"total_sent"`

	// Deliverability score is sourced externally, not computed here
	DeliverabilityScore int    `gorm:"default:0" json:"deliverability_score"` // 0-100
	ReputationTrend     string `gorm:"default:'stable'" json:"reputation_trend"`

	LastError *string `json:"last_error"`
}

// Sanitize strips credentials before the account leaves the API
func (a *EmailAccount) Sanitize() {
	a.SMTPPassword = ""
}

// ReputationTier maps the deliverability score to a display tier
func (a *EmailAccount) ReputationTier() string {
	switch {
	case a.DeliverabilityScore >= 90:
		return "excellent"
	case a.DeliverabilityScore >= 75:
		return "good"
	case a.DeliverabilityScore >= 50:
		return "fair"
	default:
		return "poor"
	}
}
