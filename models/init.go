package models

import "gorm.io/gorm"

// CreateDefaultAutomationRules seeds the rules every new user sees
func CreateDefaultAutomationRules(db *gorm.DB, userID uint) error {
	defaultRules := []AutomationRule{
		{
			UserID:      userID,
			Name:        "Reply Detection",
			Description: "Stop sequences once a contact replies",
			Trigger:     "Email reply received",
			Action:      "Remove from sequence",
			Enabled:     true,
		},
		{
			UserID:      userID,
			Name:        "Bounce Handler",
			Description: "Protect sender reputation after hard bounces",
			Trigger:     "Hard bounce detected",
			Action:      "Mark contact as invalid",
			Enabled:     true,
		},
		{
			UserID:      userID,
			Name:        "Unsubscribe Processor",
			Description: "Honor unsubscribe requests immediately",
			Trigger:     "Unsubscribe request",
			Action:      "Add to suppression list",
			Enabled:     true,
		},
		{
			UserID:      userID,
			Name:        "Engagement Optimizer",
			Description: "Pause campaigns that stop performing",
			Trigger:     "Low open rate detected",
			Action:      "Pause campaign",
			Enabled:     false,
		},
	}
	for _, rule := range defaultRules {
		if err := db.FirstOrCreate(&rule, "user_id = ? AND name = ?", rule.UserID, rule.Name).Error; err != nil {
			return err
		}
	}
	return nil
}
