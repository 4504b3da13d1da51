package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coldreach/models"
	"coldreach/utils"
)

type AutomationController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewAutomationController(db *gorm.DB, logger *log.Logger) *AutomationController {
	return &AutomationController{
		DB:     db,
		Logger: logger,
	}
}

// GetRules returns the user's automation rules, seeding the defaults on
// first access.
func (atc *AutomationController) GetRules(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var count int64
	if err := atc.DB.Model(&models.AutomationRule{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rules", nil)
	}
	if count == 0 {
		if err := models.CreateDefaultAutomationRules(atc.DB, user.ID); err != nil {
			atc.Logger.Printf("Failed to seed automation rules: %v", err)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to seed rules", nil)
		}
	}

	var rules []models.AutomationRule
	if err := atc.DB.Where("user_id = ?", user.ID).Order("id").Find(&rules).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch rules", nil)
	}

	enabled := 0
	for _, rule := range rules {
		if rule.Enabled {
			enabled++
		}
	}

	return c.JSON(fiber.Map{
		"rules":   rules,
		"enabled": enabled,
		"total":   len(rules),
	})
}

// ToggleRule flips a rule's enabled flag
func (atc *AutomationController) ToggleRule(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var rule models.AutomationRule
	if err := atc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&rule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Rule not found", nil)
	}

	if err := atc.DB.Model(&rule).Update("enabled", !rule.Enabled).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update rule", err)
	}

	return c.JSON(fiber.Map{
		"message": "Rule updated",
		"enabled": !rule.Enabled,
	})
}
