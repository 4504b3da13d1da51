package controller

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coldreach/campaign"
	"coldreach/listview"
	"coldreach/models"
	"coldreach/utils"
)

type CampaignController struct {
	DB        *gorm.DB
	Logger    *log.Logger
	Templates *utils.TemplateService
}

func NewCampaignController(db *gorm.DB, logger *log.Logger) *CampaignController {
	return &CampaignController{
		DB:        db,
		Logger:    logger,
		Templates: utils.NewTemplateService(),
	}
}

// campaignFields adapts campaigns to the list filter/sort engine
func campaignFields() listview.Fields[models.Campaign] {
	return listview.Fields[models.Campaign]{
		Searchable: func(cp models.Campaign) []string {
			return []string{cp.Name, cp.Description}
		},
		Status:    func(cp models.Campaign) string { return cp.Status },
		Name:      func(cp models.Campaign) string { return cp.Name },
		CreatedAt: func(cp models.Campaign) time.Time { return cp.CreatedAt },
		UpdatedAt: func(cp models.Campaign) time.Time { return cp.UpdatedAt },
		ReplyRate: func(cp models.Campaign) float64 { return cp.ReplyRate },
	}
}

// gormSubmitter persists a wizard draft as a campaign row plus its
// sequence steps, implementing campaign.Submitter.
type gormSubmitter struct {
	db     *gorm.DB
	userID uint

	// set by Submit on success
	created *models.Campaign
}

func (gs *gormSubmitter) Submit(ctx context.Context, draft *campaign.Draft, asDraft bool) error {
	status := models.CampaignStatusActive
	var launchedAt *time.Time
	if asDraft {
		status = models.CampaignStatusDraft
	} else {
		launchedAt = utils.Pointer(time.Now())
	}

	cp := models.Campaign{
		UserID:         gs.userID,
		Name:           draft.Name,
		Description:    draft.Description,
		FromAddress:    draft.FromAddress,
		ReplyToAddress: draft.ReplyToAddress,
		ContactFileRef: draft.ContactFileRef,
		Status:         status,
		LaunchedAt:     launchedAt,

		DailyLimit:   draft.Settings.DailyLimit,
		Timezone:     draft.Settings.Timezone,
		SendingStart: draft.Settings.SendingStart,
		SendingEnd:   draft.Settings.SendingEnd,
		WorkingDays:  draft.Settings.WorkingDays,

		TrackOpens:      draft.Settings.TrackOpens,
		TrackClicks:     draft.Settings.TrackClicks,
		UnsubscribeLink: draft.Settings.UnsubscribeLink,
	}
	if draft.ContactListID != 0 {
		cp.ContactListID = utils.Pointer(draft.ContactListID)
	}

	return gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cp).Error; err != nil {
			return err
		}

		for i, step := range draft.Sequence.Steps() {
			row := models.CampaignSequenceStep{
				CampaignID: cp.ID,
				StepNumber: i + 1,
				Kind:       step.Kind,
				Subject:    step.Subject,
				Content:    step.Content,
				WaitDays:   step.WaitDays,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		gs.created = &cp
		return nil
	})
}

// PreviewStep renders a sequence step's personalization placeholders
// against a sample contact.
func (cc *CampaignController) PreviewStep(c *fiber.Ctx) error {
	var input struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
		Contact struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Company   string `json:"company"`
		} `json:"contact"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	vars := utils.ContactVars(input.Contact.FirstName, input.Contact.LastName, input.Contact.Company)

	subject, err := cc.Templates.Render(input.Subject, vars)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid subject template", err)
	}
	content, err := cc.Templates.Render(input.Content, vars)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content template", err)
	}

	return c.JSON(fiber.Map{
		"subject": subject,
		"content": content,
	})
}
