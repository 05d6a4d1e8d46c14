package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "No se presentó", StatusNoShow.Label())
	assert.Equal(t, "reprogramada", Status("reprogramada").Label())
}

func TestStatus_Badge(t *testing.T) {
	assert.Equal(t, "badge-done", StatusCompleted.Badge())
	assert.Equal(t, "badge-confirmed", StatusConfirmed.Badge())
	assert.Equal(t, "badge-neutral", StatusCancelled.Badge())
}

func TestStatus_IsPending(t *testing.T) {
	assert.True(t, StatusScheduled.IsPending())
	assert.True(t, StatusConfirmed.IsPending())
	assert.False(t, StatusCompleted.IsPending())
}
