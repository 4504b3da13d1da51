package campaign

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records calls and can block or fail on demand
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	asDraft []bool
	err     error
	started chan struct{}
	block   chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, draft *Draft, asDraft bool) error {
	f.mu.Lock()
	f.calls++
	f.asDraft = append(f.asDraft, asDraft)
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func launchableWizard(sub Submitter) *Wizard {
	w := NewWizard(sub)
	w.Draft().Name = "Spring Push"
	w.Draft().FromAddress = "me@acme.io"
	w.Draft().ContactFileRef = "leads.csv"
	return w
}

func TestWizardStepClamping(t *testing.T) {
	w := NewWizard(&fakeSubmitter{})

	assert.Equal(t, StepBasicInfo, w.Step())
	assert.Equal(t, StepBasicInfo, w.Back())

	w.Next()
	w.Next()
	w.Next()
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, StepReview, w.Next())

	assert.Equal(t, StepSettings, w.Back())
}

func TestSubmitLaunchRefusedWithReasons(t *testing.T) {
	sub := &fakeSubmitter{}
	w := NewWizard(sub)

	err := w.Submit(context.Background(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotLaunchable)

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.NotEmpty(t, launchErr.Reasons)

	// The submitter must never see an unlaunchable draft
	assert.Equal(t, 0, sub.callCount())
}

func TestSubmitDraftSaveSkipsLaunchValidation(t *testing.T) {
	sub := &fakeSubmitter{}
	w := NewWizard(sub) // empty draft, not launchable

	require.NoError(t, w.Submit(context.Background(), true))
	assert.Equal(t, 1, sub.callCount())
	assert.Equal(t, []bool{true}, sub.asDraft)
}

func TestSubmitLaunchWhenReady(t *testing.T) {
	sub := &fakeSubmitter{}
	w := launchableWizard(sub)

	require.NoError(t, w.Submit(context.Background(), false))
	assert.Equal(t, []bool{false}, sub.asDraft)
	assert.False(t, w.Pending())
}

func TestSubmitRefusedWhilePending(t *testing.T) {
	sub := &fakeSubmitter{started: make(chan struct{}), block: make(chan struct{})}
	w := launchableWizard(sub)

	done := make(chan error, 1)
	go func() {
		done <- w.Submit(context.Background(), false)
	}()

	// Wait for the first submission to reach the submitter
	<-sub.started
	assert.True(t, w.Pending())

	err := w.Submit(context.Background(), false)
	assert.ErrorIs(t, err, ErrSubmitPending)

	close(sub.block)
	require.NoError(t, <-done)
	assert.False(t, w.Pending())
	assert.Equal(t, 1, sub.callCount())
}

func TestSubmitFailureLeavesDraftAndStep(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("upstream unavailable")}
	w := launchableWizard(sub)
	w.Next()
	w.Next()

	err := w.Submit(context.Background(), false)

	require.Error(t, err)
	assert.False(t, w.Pending())
	assert.Equal(t, StepSettings, w.Step())
	assert.Equal(t, "Spring Push", w.Draft().Name)

	// Retry goes through once the submitter recovers
	sub.err = nil
	require.NoError(t, w.Submit(context.Background(), false))
	assert.Equal(t, 2, sub.callCount())
}
