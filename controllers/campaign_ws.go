package controller

import (
	"log"
	"time"

	"github.com/gofiber/websocket/v2"
)

// HandleCampaignProgressWS streams simulated send progress for a
// campaign so the dashboard can animate the launch.
func HandleCampaignProgressWS(c *websocket.Conn) {
	defer c.Close()

	var input struct {
		CampaignName string `json:"campaignName"`
		Action       string `json:"action"`
	}

	if err := c.ReadJSON(&input); err != nil {
		log.Printf("Error reading JSON: %v", err)
		return
	}

	if input.Action != "simulate" {
		return
	}

	stages := []string{
		"Sending initial emails...",
		"Waiting for responses...",
		"Sending follow-ups...",
		"Tracking opens and clicks...",
		"Processing replies...",
		"Campaign completed!",
	}

	for i, stage := range stages {
		time.Sleep(2 * time.Second)
		progress := struct {
			Message string `json:"message"`
			Percent int    `json:"percent"`
			Status  string `json:"status"`
		}{
			Message: stage,
			Percent: (i + 1) * 100 / len(stages),
			Status:  "running",
		}

		if i == len(stages)-1 {
			progress.Status = "completed"
		}

		if err := c.WriteJSON(progress); err != nil {
			log.Printf("Error writing JSON: %v", err)
			break
		}
	}
}
