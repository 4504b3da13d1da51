package utils

import (
	"fmt"
	"strings"
)

// Content generation kinds
const (
	GenerateSubject = "subject"
	GenerateBody    = "body"
)

// PromptContext carries the campaign context the copywriting prompt
// embeds.
type PromptContext struct {
	Type             string
	Tone             string
	Industry         string
	Persona          string
	Objective        string
	CurrentSubject   string
	CurrentContent   string
	SequencePosition string
}

// SystemPrompt is the copywriter instruction sent with every request
const SystemPrompt = "You are an expert email copywriter specializing in cold outreach. " +
	"Generate compelling, personalized email content that converts while maintaining authenticity."

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func toneInstruction(tone, kind string) string {
	if kind == GenerateSubject {
		switch tone {
		case "formal":
			return "Use professional language"
		case "casual":
			return "Use conversational tone"
		default:
			return "Use persuasive language"
		}
	}
	switch tone {
	case "formal":
		return "Use professional, respectful language"
	case "casual":
		return "Use friendly, conversational tone"
	default:
		return "Use persuasive, action-oriented language"
	}
}

// BuildPrompt renders the natural-language generation prompt for a
// subject line or an email body.
func BuildPrompt(ctx PromptContext) string {
	industry := orDefault(ctx.Industry, "General business")
	persona := orDefault(ctx.Persona, "Business professional")
	position := orDefault(ctx.SequencePosition, "Initial email")

	if ctx.Type == GenerateSubject {
		return fmt.Sprintf(`Generate a compelling email subject line for a %s cold email outreach campaign.

Context:
- Industry: %s
- Target persona: %s
- Objective: %s
- Email position: %s
- Current subject: %s

Requirements:
- Keep it under 50 characters
- Make it engaging and personalized
- Avoid spam trigger words
- %s
- Generate 3 different options

Format: Return only the subject lines, one per line, without quotes or numbering.`,
			ctx.Tone, industry, persona, ctx.Objective, position,
			orDefault(ctx.CurrentSubject, "None"),
			toneInstruction(ctx.Tone, GenerateSubject))
	}

	opener := "Make a strong first impression"
	if ctx.SequencePosition == "follow-up" {
		opener = "Reference previous email subtly"
	}

	return fmt.Sprintf(`Generate a %s cold email for outreach campaign.

Context:
- Industry: %s
- Target persona: %s
- Objective: %s
- Email position: %s
- Current content: %s

Requirements:
- Keep it concise (under 150 words)
- Include personalization variables like {{first_name}}, {{company}}
- %s
- Include a clear call-to-action
- %s
- Don't use generic templates

Format: Return only the email content, ready to use with variables.`,
		ctx.Tone, industry, persona, ctx.Objective, position,
		orDefault(ctx.CurrentContent, "None"),
		toneInstruction(ctx.Tone, GenerateBody), opener)
}

// DemoResponse returns the deterministic placeholder text used when no
// generation credential is configured.
func DemoResponse(ctx PromptContext) string {
	if ctx.Type == GenerateSubject {
		subjects := []string{
			fmt.Sprintf("Quick question about %s growth", orDefault(ctx.Industry, "your business")),
			fmt.Sprintf("%s insight for {{company}}", orDefault(ctx.Persona, "Business")),
			fmt.Sprintf("Helping {{company}} with %s", strings.ToLower(ctx.Objective)),
		}
		return strings.Join(subjects, "\n")
	}

	var pitch string
	switch ctx.Tone {
	case "formal":
		pitch = "optimize their processes"
	case "casual":
		pitch = "get better results"
	default:
		pitch = "increase their ROI by 30%"
	}

	return fmt.Sprintf(`Hi {{first_name}},

I noticed {{company}} is working on %s and thought you might be interested in how we've helped similar %s achieve their goals.

We've recently helped companies like yours %s through our proven approach.

Would you be open to a brief 15-minute call next week to discuss how this could benefit {{company}}?

Best regards,
[Your name]

P.S. I've attached a quick case study that might interest you.`,
		strings.ToLower(ctx.Objective), orDefault(ctx.Industry, "businesses"), pitch)
}
