package campaign

import (
	"context"
	"errors"
	"sync"
)

// Wizard steps
const (
	StepBasicInfo = 1
	StepSequences = 2
	StepSettings  = 3
	StepReview    = 4
)

var (
	ErrSubmitPending = errors.New("a submission is already in progress")

	// ErrNotLaunchable carries the validation reasons alongside
	ErrNotLaunchable = errors.New("draft is not launchable")
)

// LaunchError reports why a launch was refused
type LaunchError struct {
	Reasons []string
}

func (e *LaunchError) Error() string { return ErrNotLaunchable.Error() }

func (e *LaunchError) Unwrap() error { return ErrNotLaunchable }

// Submitter models the remote create-campaign call. Implementations
// receive the draft and whether it is being saved as a draft or
// launched.
type Submitter interface {
	Submit(ctx context.Context, draft *Draft, asDraft bool) error
}

// Wizard is the linear four-step controller driving campaign creation.
// Steps clamp at the boundaries rather than erroring, matching the
// stepper it fronts.
type Wizard struct {
	mu        sync.Mutex
	draft     *Draft
	step      int
	pending   bool
	submitter Submitter
}

// NewWizard starts at the basic-info step with a fresh draft
func NewWizard(submitter Submitter) *Wizard {
	return &Wizard{
		draft:     NewDraft(),
		step:      StepBasicInfo,
		submitter: submitter,
	}
}

// Draft exposes the wizard's draft for field updates
func (w *Wizard) Draft() *Draft {
	return w.draft
}

// Step returns the current step (1..4)
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next advances one step, clamping at review
func (w *Wizard) Next() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < StepReview {
		w.step++
	}
	return w.step
}

// Back retreats one step, clamping at basic info
func (w *Wizard) Back() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepBasicInfo {
		w.step--
	}
	return w.step
}

// Pending reports whether a submission is in flight
func (w *Wizard) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending
}

// Submit sends the draft to the submitter. Draft saves are allowed from
// any step; launching first validates the draft and refuses with the
// missing-requirement reasons instead of proceeding. While a submission
// is pending a second call is refused, and the wizard returns to idle
// exactly once when the submitter finishes. On failure the draft and
// current step are left unchanged so the caller can retry.
func (w *Wizard) Submit(ctx context.Context, asDraft bool) error {
	if !asDraft {
		if reasons := w.draft.ValidateForLaunch(); len(reasons) > 0 {
			return &LaunchError{Reasons: reasons}
		}
	}

	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return ErrSubmitPending
	}
	w.pending = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.pending = false
		w.mu.Unlock()
	}()

	return w.submitter.Submit(ctx, w.draft, asDraft)
}
