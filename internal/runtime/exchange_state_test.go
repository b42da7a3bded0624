package runtime

import (
	"testing"

	"eva-support-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginMarksConversationBusy(t *testing.T) {
	r := NewStateRepository()
	convId := uuid.New()

	require.NoError(t, r.Begin(convId))
	assert.Equal(t, PhaseAwaitingReply, r.Phase(convId))
	assert.ErrorIs(t, r.Begin(convId), dto.ErrBusy)
}

func TestRevealingStillCountsAsBusy(t *testing.T) {
	r := NewStateRepository()
	convId := uuid.New()

	require.NoError(t, r.Begin(convId))
	r.SetRevealing(convId)

	assert.Equal(t, PhaseRevealing, r.Phase(convId))
	assert.ErrorIs(t, r.Begin(convId), dto.ErrBusy)
}

func TestSlotOnlyFreesThroughEnd(t *testing.T) {
	r := NewStateRepository()
	convId := uuid.New()

	require.NoError(t, r.Begin(convId))
	assert.ErrorIs(t, r.Begin(convId), dto.ErrBusy, "slot never expires on its own")

	r.End(convId)
	assert.Equal(t, "", r.Phase(convId))
	require.NoError(t, r.Begin(convId))
}

func TestConversationsAreBusyIndependently(t *testing.T) {
	r := NewStateRepository()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, r.Begin(first))
	require.NoError(t, r.Begin(second))

	r.End(first)
	assert.Equal(t, "", r.Phase(first))
	assert.Equal(t, PhaseAwaitingReply, r.Phase(second))
}
