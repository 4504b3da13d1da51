package campaign

import "fmt"

// Settings mirrors the sending configuration collected on the wizard's
// settings step.
type Settings struct {
	DailyLimit      int      `json:"daily_limit"`
	Timezone        string   `json:"timezone"`
	SendingStart    string   `json:"sending_start"`
	SendingEnd      string   `json:"sending_end"`
	WorkingDays     []string `json:"working_days"`
	TrackOpens      bool     `json:"track_opens"`
	TrackClicks     bool     `json:"track_clicks"`
	UnsubscribeLink bool     `json:"unsubscribe_link"`
}

// DefaultSettings returns the settings a fresh draft starts with
func DefaultSettings() Settings {
	return Settings{
		DailyLimit:      50,
		Timezone:        "America/New_York",
		SendingStart:    "09:00",
		SendingEnd:      "17:00",
		WorkingDays:     []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		TrackOpens:      true,
		TrackClicks:     true,
		UnsubscribeLink: true,
	}
}

// Draft aggregates everything the wizard collects before a campaign is
// saved or launched.
type Draft struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	FromAddress    string `json:"from_address"`
	ReplyToAddress string `json:"reply_to_address"`

	// Contact source: an uploaded file reference or an existing list
	ContactFileRef string `json:"contact_file_ref"`
	ContactListID  uint   `json:"contact_list_id"`

	Sequence *SequenceStore `json:"-"`
	Settings Settings       `json:"settings"`
}

// NewDraft creates an empty draft with one initial step and default
// settings.
func NewDraft() *Draft {
	return &Draft{
		Sequence: NewSequenceStore(),
		Settings: DefaultSettings(),
	}
}

// SetBasicInfo replaces only the targeted basic-info field
func (d *Draft) SetBasicInfo(field, value string) error {
	switch field {
	case "name":
		d.Name = value
	case "description":
		d.Description = value
	case "from_address":
		d.FromAddress = value
	case "reply_to_address":
		d.ReplyToAddress = value
	case "contact_file_ref":
		d.ContactFileRef = value
	default:
		return fmt.Errorf("unknown basic info field %q", field)
	}
	return nil
}

// SetDailyLimit replaces the daily limit, rejecting non-positive values
func (d *Draft) SetDailyLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("daily limit must be positive")
	}
	d.Settings.DailyLimit = limit
	return nil
}

// SetTimezone replaces the IANA timezone identifier
func (d *Draft) SetTimezone(tz string) {
	d.Settings.Timezone = tz
}

// SetSendingWindow replaces one bound of the sending window
func (d *Draft) SetSendingWindow(bound, value string) error {
	switch bound {
	case "start":
		d.Settings.SendingStart = value
	case "end":
		d.Settings.SendingEnd = value
	default:
		return fmt.Errorf("unknown sending window bound %q", bound)
	}
	return nil
}

// ToggleWorkingDay adds or removes one weekday, preserving the order of
// the others.
func (d *Draft) ToggleWorkingDay(day string) {
	for i, existing := range d.Settings.WorkingDays {
		if existing == day {
			d.Settings.WorkingDays = append(d.Settings.WorkingDays[:i], d.Settings.WorkingDays[i+1:]...)
			return
		}
	}
	d.Settings.WorkingDays = append(d.Settings.WorkingDays, day)
}

// SetTracking flips one tracking flag
func (d *Draft) SetTracking(flag string, enabled bool) error {
	switch flag {
	case "track_opens":
		d.Settings.TrackOpens = enabled
	case "track_clicks":
		d.Settings.TrackClicks = enabled
	case "unsubscribe_link":
		d.Settings.UnsubscribeLink = enabled
	default:
		return fmt.Errorf("unknown tracking flag %q", flag)
	}
	return nil
}

// HasContactSource reports whether the draft references any contacts
func (d *Draft) HasContactSource() bool {
	return d.ContactFileRef != "" || d.ContactListID != 0
}

// ReviewProjection is the read-only summary shown on the review step
type ReviewProjection struct {
	Name          string   `json:"name"`
	FromAddress   string   `json:"from_address"`
	StepCount     int      `json:"step_count"`
	FollowUpCount int      `json:"follow_up_count"`
	DailyLimit    int      `json:"daily_limit"`
	Timezone      string   `json:"timezone"`
	SendingWindow string   `json:"sending_window"`
	WorkingDays   []string `json:"working_days"`
	Checklist     []Check  `json:"checklist"`
}

// Check is one readiness condition on the review checklist
type Check struct {
	Label string `json:"label"`
	Ready bool   `json:"ready"`
}

// ToReviewProjection summarizes the draft without mutating it
func (d *Draft) ToReviewProjection() ReviewProjection {
	steps := d.Sequence.Steps()
	followUps := 0
	for _, s := range steps {
		if s.Kind == StepKindFollowUp {
			followUps++
		}
	}
	return ReviewProjection{
		Name:          d.Name,
		FromAddress:   d.FromAddress,
		StepCount:     len(steps),
		FollowUpCount: followUps,
		DailyLimit:    d.Settings.DailyLimit,
		Timezone:      d.Settings.Timezone,
		SendingWindow: d.Settings.SendingStart + "-" + d.Settings.SendingEnd,
		WorkingDays:   append([]string(nil), d.Settings.WorkingDays...),
		Checklist: []Check{
			{Label: "Campaign name set", Ready: d.Name != ""},
			{Label: "From address set", Ready: d.FromAddress != ""},
			{Label: "Contact source attached", Ready: d.HasContactSource()},
			{Label: "Working days selected", Ready: len(d.Settings.WorkingDays) > 0},
		},
	}
}

// ValidateForLaunch returns the ordered list of missing-requirement
// reasons, empty if the draft is launchable. It reports instead of
// failing because the wizard renders the reasons inline.
func (d *Draft) ValidateForLaunch() []string {
	var reasons []string
	if d.Name == "" {
		reasons = append(reasons, "campaign name is required")
	}
	if d.FromAddress == "" {
		reasons = append(reasons, "from address is required")
	}
	if !d.HasContactSource() {
		reasons = append(reasons, "a contact list or uploaded file is required")
	}
	reasons = append(reasons, d.Sequence.Validate()...)
	return reasons
}
