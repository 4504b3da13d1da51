package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign represents an outreach campaign produced by the creation wizard
type Campaign struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	// Campaign details
	Name           string `gorm:"not null" json:"name"`
	Description    string `json:"description"`
	FromAddress    string `json:"from_address"`
	ReplyToAddress string `json:"reply_to_address"`

	// Contact source: either an uploaded file reference or a contact list
	ContactFileRef string `json:"contact_file_ref"`
	ContactListID  *uint  `gorm:"index" json:"contact_list_id"`

	// Lifecycle
	Status      string     `gorm:"default:'draft'" json:"status"` // draft, active, paused, completed
	LaunchedAt  *time.Time `json:"launched_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Sending settings
	DailyLimit   int      `gorm:"default:50" json:"daily_limit"`
	Timezone     string   `gorm:"default:'America/New_York'" json:"timezone"`
	SendingStart string   `gorm:"default:'09:00'" json:"sending_start"`
	SendingEnd   string   `gorm:"default:'17:00'" json:"sending_end"`
	WorkingDays  []string `gorm:"type:jsonb;serializer:json" json:"working_days"`

	// Tracking settings
	TrackOpens      bool `gorm:"default:true" json:"track_opens"`
	TrackClicks     bool `gorm:"default:true" json:"track_clicks"`
	UnsubscribeLink bool `gorm:"default:true" json:"unsubscribe_link"`

	// Statistics (denormalized for performance)
	TotalContacts int     `gorm:"default:0" json:"total_contacts"`
	EmailsSent    int     `gorm:"default:0" json:"emails_sent"`
	OpenRate      float64 `gorm:"default:0" json:"open_rate"`
	ReplyRate     float64 `gorm:"default:0" json:"reply_rate"`
	ClickRate     float64 `gorm:"default:0" json:"click_rate"`
	BounceRate    float64 `gorm:"default:0" json:"bounce_rate"`

	// Relations
	SequenceSteps []CampaignSequenceStep `gorm:"foreignKey:CampaignID" json:"sequence_steps,omitempty"`
	ContactList   *ContactList           `json:"contact_list,omitempty"`
}

// CampaignSequenceStep is one persisted email in a campaign's sequence
type CampaignSequenceStep struct {
	gorm.Model
	CampaignID uint `gorm:"not null;index" json:"campaign_id"`

	StepNumber int    `gorm:"not null" json:"step_number"`
	Kind       string `gorm:"not null" json:"kind"` // initial, follow-up
	Subject    string `json:"subject"`
	Content    string `gorm:"type:text" json:"content"`
	WaitDays   int    `gorm:"default:0" json:"wait_days"`

	// Tracking
	SentCount int     `gorm:"default:0" json:"sent_count"`
	OpenRate  float64 `gorm:"default:0" json:"open_rate"`
	ReplyRate float64 `gorm:"default:0" json:"reply_rate"`
}
