package statemachine

import (
	"testing"

	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	t.Run("should move a pending fix to approved", func(t *testing.T) {
		next, err := Transition(dtos.FixStatusPending, FixEventApprove)
		assert.NoError(t, err)
		assert.Equal(t, dtos.FixStatusApproved, next)
	})

	t.Run("should move a pending fix to rejected", func(t *testing.T) {
		next, err := Transition(dtos.FixStatusPending, FixEventReject)
		assert.NoError(t, err)
		assert.Equal(t, dtos.FixStatusRejected, next)
	})

	t.Run("should keep a fix pending if applying it failed", func(t *testing.T) {
		next, err := Transition(dtos.FixStatusPending, FixEventApplyFailed)
		assert.NoError(t, err)
		assert.Equal(t, dtos.FixStatusPending, next)
	})

	t.Run("should not allow any transition out of a terminal status", func(t *testing.T) {
		for _, status := range []dtos.FixStatus{dtos.FixStatusApproved, dtos.FixStatusRejected, dtos.FixStatusAutoFixed} {
			for _, event := range []FixEvent{FixEventApprove, FixEventReject, FixEventApplyFailed} {
				next, err := Transition(status, event)
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, status, next)
				assert.False(t, CanTransition(status, event))
			}
		}
	})

	t.Run("should only allow pending and auto fixed as initial status", func(t *testing.T) {
		assert.True(t, IsValidInitialStatus(dtos.FixStatusPending))
		assert.True(t, IsValidInitialStatus(dtos.FixStatusAutoFixed))
		assert.False(t, IsValidInitialStatus(dtos.FixStatusApproved))
		assert.False(t, IsValidInitialStatus(dtos.FixStatusRejected))
	})
}
