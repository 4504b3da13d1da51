package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coldreach/models"
)

type DashboardController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewDashboardController(db *gorm.DB, logger *log.Logger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: logger,
	}
}

// GetDashboardStats aggregates the headline numbers for the dashboard
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var totalCampaigns, activeCampaigns, totalContacts, totalAccounts int64
	dc.DB.Model(&models.Campaign{}).Where("user_id = ?", user.ID).Count(&totalCampaigns)
	dc.DB.Model(&models.Campaign{}).Where("user_id = ? AND status = ?", user.ID, models.CampaignStatusActive).Count(&activeCampaigns)
	dc.DB.Model(&models.Contact{}).Where("user_id = ?", user.ID).Count(&totalContacts)
	dc.DB.Model(&models.EmailAccount{}).Where("user_id = ?", user.ID).Count(&totalAccounts)

	type rates struct {
		EmailsSent int
		OpenRate   float64
		ReplyRate  float64
	}
	var agg rates
	dc.DB.Model(&models.Campaign{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(emails_sent),0) as emails_sent, COALESCE(AVG(open_rate),0) as open_rate, COALESCE(AVG(reply_rate),0) as reply_rate").
		Scan(&agg)

	var avgDeliverability float64
	dc.DB.Model(&models.EmailAccount{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(AVG(deliverability_score),0)").
		Scan(&avgDeliverability)

	return c.JSON(fiber.Map{
		"total_campaigns":    totalCampaigns,
		"active_campaigns":   activeCampaigns,
		"total_contacts":     totalContacts,
		"total_accounts":     totalAccounts,
		"emails_sent":        agg.EmailsSent,
		"avg_open_rate":      agg.OpenRate,
		"avg_reply_rate":     agg.ReplyRate,
		"avg_deliverability": avgDeliverability,
	})
}
