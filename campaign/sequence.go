// Package campaign holds the campaign-creation core: the email sequence
// store, the draft aggregate, and the wizard state machine. It has no
// HTTP or database dependencies so the controllers can drive it and the
// tests can exercise it directly.
package campaign

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Step kinds
const (
	StepKindInitial  = "initial"
	StepKindFollowUp = "follow-up"
)

// Default wait for a newly added follow-up
const defaultFollowUpWaitDays = 3

var (
	ErrRemoveInitialStep = errors.New("the initial step cannot be removed")
	ErrStepNotFound      = errors.New("sequence step not found")
	ErrUnknownStepField  = errors.New("unknown sequence step field")
)

// Step is one email in the outreach sequence. WaitDays is meaningful
// only for follow-up steps.
type Step struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
	WaitDays int    `json:"wait_days"`
	Kind     string `json:"kind"`
}

// SequenceStore is an ordered list of sequence steps. The first step is
// always the single initial send; everything after it is a follow-up.
type SequenceStore struct {
	steps []Step
}

// NewSequenceStore creates a store with one empty initial step
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{
		steps: []Step{{
			ID:   uuid.NewString(),
			Kind: StepKindInitial,
		}},
	}
}

// Steps returns a copy of the steps in sequence order
func (s *SequenceStore) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Len returns the number of steps
func (s *SequenceStore) Len() int {
	return len(s.steps)
}

// AddFollowUp appends a new follow-up step with a fresh id, the default
// wait of three days, and empty subject/content. It returns the new step.
func (s *SequenceStore) AddFollowUp() Step {
	step := Step{
		ID:       uuid.NewString(),
		WaitDays: defaultFollowUpWaitDays,
		Kind:     StepKindFollowUp,
	}
	s.steps = append(s.steps, step)
	return step
}

// Remove deletes the step with the given id. Removing the initial step
// is rejected, not silently ignored.
func (s *SequenceStore) Remove(id string) error {
	for i, step := range s.steps {
		if step.ID != id {
			continue
		}
		if step.Kind == StepKindInitial {
			return ErrRemoveInitialStep
		}
		s.steps = append(s.steps[:i], s.steps[i+1:]...)
		return nil
	}
	return ErrStepNotFound
}

// UpdateField replaces a single field on a single step, leaving every
// other field and step untouched.
func (s *SequenceStore) UpdateField(id, field string, value interface{}) error {
	for i := range s.steps {
		if s.steps[i].ID != id {
			continue
		}
		switch field {
		case "subject":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("subject must be a string")
			}
			s.steps[i].Subject = v
		case "content":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("content must be a string")
			}
			s.steps[i].Content = v
		case "wait_days":
			v, ok := toInt(value)
			if !ok {
				return fmt.Errorf("wait_days must be an integer")
			}
			if v < 0 {
				return fmt.Errorf("wait_days must not be negative")
			}
			s.steps[i].WaitDays = v
		default:
			return ErrUnknownStepField
		}
		return nil
	}
	return ErrStepNotFound
}

// Validate reports the ordering problems a sequence would have if
// launched: follow-ups must wait at least one day.
func (s *SequenceStore) Validate() []string {
	var problems []string
	for i, step := range s.steps {
		if step.Kind == StepKindFollowUp && step.WaitDays < 1 {
			problems = append(problems, fmt.Sprintf("step %d must wait at least 1 day", i+1))
		}
	}
	return problems
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		// JSON numbers decode as float64
		return int(n), true
	}
	return 0, false
}
