package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"coldreach/campaign"
	"coldreach/models"
	"coldreach/utils"
)

// CreateCampaignRequest is the wizard's draft payload
type CreateCampaignRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	FromAddress    string `json:"from_address"`
	ReplyToAddress string `json:"reply_to_address"`
	ContactFileRef string `json:"contact_file_ref"`
	ContactListID  uint   `json:"contact_list_id"`

	SequenceSteps []struct {
		Subject  string `json:"subject"`
		Content  string `json:"content"`
		WaitDays int    `json:"wait_days"`
	} `json:"sequence_steps"`

	Settings *campaign.Settings `json:"settings"`

	// Launch=false saves a draft; launch=true requires a valid draft
	Launch bool `json:"launch"`
}

// draftFromRequest reconstructs the wizard draft from the payload. The
// first step is the initial send; everything after it is a follow-up.
func draftFromRequest(req CreateCampaignRequest) *campaign.Draft {
	draft := campaign.NewDraft()
	draft.Name = req.Name
	draft.Description = req.Description
	draft.FromAddress = req.FromAddress
	draft.ReplyToAddress = req.ReplyToAddress
	draft.ContactFileRef = req.ContactFileRef
	draft.ContactListID = req.ContactListID
	if req.Settings != nil {
		draft.Settings = *req.Settings
	}

	for i, step := range req.SequenceSteps {
		if i == 0 {
			initial := draft.Sequence.Steps()[0]
			draft.Sequence.UpdateField(initial.ID, "subject", step.Subject)
			draft.Sequence.UpdateField(initial.ID, "content", step.Content)
			continue
		}
		added := draft.Sequence.AddFollowUp()
		draft.Sequence.UpdateField(added.ID, "subject", step.Subject)
		draft.Sequence.UpdateField(added.ID, "content", step.Content)
		if step.WaitDays > 0 {
			draft.Sequence.UpdateField(added.ID, "wait_days", step.WaitDays)
		}
	}

	return draft
}

// CreateCampaign persists a wizard draft, either as a draft campaign or
// launched. Launching is refused with the missing-requirement reasons
// when the draft is incomplete.
func (cc *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var req CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		cc.Logger.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	draft := draftFromRequest(req)

	submitter := &gormSubmitter{db: cc.DB, userID: user.ID}
	wizard := campaign.NewWizard(submitter)
	*wizard.Draft() = *draft

	if err := wizard.Submit(c.Context(), !req.Launch); err != nil {
		var launchErr *campaign.LaunchError
		if errors.As(err, &launchErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Campaign is not ready to launch",
				"reasons": launchErr.Reasons,
			})
		}
		cc.Logger.Printf("Failed to create campaign: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create campaign",
		})
	}

	utils.LogEvent("campaign_created", map[string]interface{}{
		"user_id":     user.ID,
		"campaign_id": submitter.created.ID,
		"launched":    req.Launch,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Campaign created successfully",
		"campaign": submitter.created,
		"review":   draft.ToReviewProjection(),
	})
}
