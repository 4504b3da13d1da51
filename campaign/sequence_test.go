package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequenceStoreStartsWithInitialStep(t *testing.T) {
	store := NewSequenceStore()

	steps := store.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, StepKindInitial, steps[0].Kind)
	assert.Equal(t, 0, steps[0].WaitDays)
	assert.NotEmpty(t, steps[0].ID)
}

func TestAddFollowUp(t *testing.T) {
	store := NewSequenceStore()

	added := store.AddFollowUp()

	steps := store.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, StepKindFollowUp, steps[1].Kind)
	assert.Equal(t, 3, steps[1].WaitDays)
	assert.Empty(t, steps[1].Subject)
	assert.Empty(t, steps[1].Content)
	assert.NotEqual(t, steps[0].ID, added.ID)
}

func TestRemoveInitialStepRejected(t *testing.T) {
	store := NewSequenceStore()
	initial := store.Steps()[0]

	err := store.Remove(initial.ID)

	assert.ErrorIs(t, err, ErrRemoveInitialStep)
	assert.Equal(t, 1, store.Len())
}

func TestRemoveFollowUp(t *testing.T) {
	store := NewSequenceStore()
	added := store.AddFollowUp()

	require.NoError(t, store.Remove(added.ID))
	assert.Equal(t, 1, store.Len())
}

func TestRemoveUnknownStep(t *testing.T) {
	store := NewSequenceStore()

	err := store.Remove("no-such-id")

	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestUpdateFieldTouchesOnlyTargetedField(t *testing.T) {
	store := NewSequenceStore()
	added := store.AddFollowUp()

	require.NoError(t, store.UpdateField(added.ID, "subject", "Quick question"))
	require.NoError(t, store.UpdateField(added.ID, "wait_days", 5))

	steps := store.Steps()
	assert.Equal(t, "Quick question", steps[1].Subject)
	assert.Equal(t, 5, steps[1].WaitDays)
	assert.Empty(t, steps[1].Content)

	// Other steps are untouched
	assert.Empty(t, steps[0].Subject)
	assert.Equal(t, 0, steps[0].WaitDays)
}

func TestUpdateFieldJSONNumber(t *testing.T) {
	store := NewSequenceStore()
	added := store.AddFollowUp()

	// JSON bodies decode numbers as float64
	require.NoError(t, store.UpdateField(added.ID, "wait_days", float64(7)))
	assert.Equal(t, 7, store.Steps()[1].WaitDays)
}

func TestUpdateFieldRejectsUnknownFieldAndBadValues(t *testing.T) {
	store := NewSequenceStore()
	added := store.AddFollowUp()

	assert.ErrorIs(t, store.UpdateField(added.ID, "cc_list", "x"), ErrUnknownStepField)
	assert.Error(t, store.UpdateField(added.ID, "subject", 42))
	assert.Error(t, store.UpdateField(added.ID, "wait_days", -1))
}

func TestValidateFlagsFollowUpWithoutWait(t *testing.T) {
	store := NewSequenceStore()
	added := store.AddFollowUp()
	require.NoError(t, store.UpdateField(added.ID, "wait_days", 0))

	problems := store.Validate()

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "at least 1 day")
}
