package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coldreach/models"
	"coldreach/utils"
)

// UpdateCampaign updates a campaign's editable fields
func (cc *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	var cp models.Campaign
	if err := cc.DB.Where("id = ? AND user_id = ?", campaignID, user.ID).First(&cp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}

	var input struct {
		Name           *string `json:"name"`
		Description    *string `json:"description"`
		FromAddress    *string `json:"from_address"`
		ReplyToAddress *string `json:"reply_to_address"`
		DailyLimit     *int    `json:"daily_limit"`
		Timezone       *string `json:"timezone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.FromAddress != nil {
		updates["from_address"] = *input.FromAddress
	}
	if input.ReplyToAddress != nil {
		updates["reply_to_address"] = *input.ReplyToAddress
	}
	if input.DailyLimit != nil {
		if *input.DailyLimit <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Daily limit must be positive", nil)
		}
		updates["daily_limit"] = *input.DailyLimit
	}
	if input.Timezone != nil {
		updates["timezone"] = *input.Timezone
	}

	if len(updates) > 0 {
		if err := cc.DB.Model(&cp).Updates(updates).Error; err != nil {
			cc.Logger.Printf("Failed to update campaign %s: %v", campaignID, err)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update campaign", nil)
		}
	}

	return c.JSON(fiber.Map{
		"message":  "Campaign updated",
		"campaign": cp,
	})
}

// LaunchCampaign transitions a draft to active
func (cc *CampaignController) LaunchCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	var cp models.Campaign
	if err := cc.DB.Where("id = ? AND user_id = ?", campaignID, user.ID).First(&cp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}

	if cp.Status != models.CampaignStatusDraft {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only draft campaigns can be launched",
		})
	}

	var reasons []string
	if cp.Name == "" {
		reasons = append(reasons, "campaign name is required")
	}
	if cp.FromAddress == "" {
		reasons = append(reasons, "from address is required")
	}
	if cp.ContactFileRef == "" && cp.ContactListID == nil {
		reasons = append(reasons, "a contact list or uploaded file is required")
	}
	if len(reasons) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Campaign is not ready to launch",
			"reasons": reasons,
		})
	}

	if err := cc.DB.Model(&cp).Updates(map[string]interface{}{
		"status":      models.CampaignStatusActive,
		"launched_at": time.Now(),
	}).Error; err != nil {
		cc.Logger.Printf("Failed to launch campaign %s: %v", campaignID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to launch campaign", nil)
	}

	utils.LogEvent("campaign_launched", map[string]interface{}{
		"user_id":     user.ID,
		"campaign_id": cp.ID,
	})

	return c.JSON(fiber.Map{
		"message":  "Campaign launched",
		"campaign": cp,
	})
}

// ToggleCampaign flips a campaign between active and paused. Every
// status change refreshes updated_at.
func (cc *CampaignController) ToggleCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	var cp models.Campaign
	if err := cc.DB.Where("id = ? AND user_id = ?", campaignID, user.ID).First(&cp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}

	var next string
	switch cp.Status {
	case models.CampaignStatusActive:
		next = models.CampaignStatusPaused
	case models.CampaignStatusPaused:
		next = models.CampaignStatusActive
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only active or paused campaigns can be toggled",
		})
	}

	if err := cc.DB.Model(&cp).Update("status", next).Error; err != nil {
		cc.Logger.Printf("Failed to toggle campaign %s: %v", campaignID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update campaign", nil)
	}

	return c.JSON(fiber.Map{
		"message": "Campaign status updated",
		"status":  next,
	})
}

// DeleteCampaign removes a campaign and its sequence steps
func (cc *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	var cp models.Campaign
	if err := cc.DB.Where("id = ? AND user_id = ?", campaignID, user.ID).First(&cp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", cp.ID).Delete(&models.CampaignSequenceStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cp).Error
	})
	if err != nil {
		cc.Logger.Printf("Failed to delete campaign %s: %v", campaignID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete campaign", nil)
	}

	return c.JSON(fiber.Map{"message": "Campaign deleted"})
}
