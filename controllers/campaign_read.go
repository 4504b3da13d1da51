package controller

import (
	"github.com/gofiber/fiber/v2"

	"coldreach/listview"
	"coldreach/models"
)

// GetCampaigns returns the user's campaigns filtered and sorted through
// the list view engine. Query params: search, status, sort.
func (cc *CampaignController) GetCampaigns(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var campaigns []models.Campaign
	if err := cc.DB.Where("user_id = ?", user.ID).Order("id").Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch campaigns",
		})
	}

	query := listview.Query{
		Text:         c.Query("search"),
		StatusEquals: c.Query("status"),
		SortKey:      c.Query("sort", listview.SortByUpdated),
	}

	view := listview.View(campaigns, query, campaignFields())

	return c.JSON(fiber.Map{
		"campaigns": view,
		"total":     len(view),
	})
}

// GetCampaign returns a single campaign with its sequence steps
func (cc *CampaignController) GetCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	var cp models.Campaign
	if err := cc.DB.Preload("SequenceSteps").
		Where("id = ? AND user_id = ?", campaignID, user.ID).First(&cp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}

	return c.JSON(fiber.Map{"campaign": cp})
}

// GetCampaignStats returns the aggregate counters for a campaign
func (cc *CampaignController) GetCampaignStats(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	var cp models.Campaign
	if err := cc.DB.Where("id = ? AND user_id = ?", campaignID, user.ID).First(&cp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}

	return c.JSON(fiber.Map{
		"total_contacts": cp.TotalContacts,
		"emails_sent":    cp.EmailsSent,
		"open_rate":      cp.OpenRate,
		"reply_rate":     cp.ReplyRate,
		"click_rate":     cp.ClickRate,
		"bounce_rate":    cp.BounceRate,
	})
}
