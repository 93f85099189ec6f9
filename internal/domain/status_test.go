package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"Queue", StatusQueue, false},
		{"queue", StatusQueue, false},
		{"todo", StatusQueue, false},
		{"In Progress", StatusInProgress, false},
		{"in_progress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{"InProgress", StatusInProgress, false},
		{"Completed", StatusCompleted, false},
		{"done", StatusCompleted, false},
		{"blocked", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_NextPrev(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusQueue.Next())
	assert.Equal(t, StatusCompleted, StatusInProgress.Next())
	assert.Equal(t, StatusCompleted, StatusCompleted.Next())

	assert.Equal(t, StatusQueue, StatusQueue.Prev())
	assert.Equal(t, StatusQueue, StatusInProgress.Prev())
	assert.Equal(t, StatusInProgress, StatusCompleted.Prev())
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "Queue", StatusQueue.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Done", StatusCompleted.Display())
}
