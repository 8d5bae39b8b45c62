package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Sequence(t *testing.T) {
	t.Run("Walk Forward Through Every Status", func(t *testing.T) {
		current := StatusBooked
		visited := []BookingStatus{current}
		for {
			next, ok := current.Next()
			if !ok {
				break
			}
			assert.True(t, current.CanTransition(next))
			current = next
			visited = append(visited, current)
		}
		assert.Equal(t, StatusSequence, visited)
		assert.True(t, current.IsTerminal())
	})

	t.Run("Terminal Status Has No Next", func(t *testing.T) {
		_, ok := StatusReportDelivered.Next()
		assert.False(t, ok)
	})
}

func TestBookingStatus_CanTransition(t *testing.T) {
	t.Run("Skipping A Step Is Rejected", func(t *testing.T) {
		assert.False(t, StatusBooked.CanTransition(StatusSampleCollected))
		assert.False(t, StatusBooked.CanTransition(StatusReportDelivered))
	})

	t.Run("Moving Backward Is Rejected", func(t *testing.T) {
		assert.False(t, StatusSampleCollected.CanTransition(StatusCollectorAssigned))
		assert.False(t, StatusVerified.CanTransition(StatusBooked))
	})

	t.Run("Self Transition Is Rejected", func(t *testing.T) {
		for _, status := range StatusSequence {
			assert.False(t, status.CanTransition(status))
		}
	})

	t.Run("Only Adjacent Pairs Are Legal", func(t *testing.T) {
		legalCount := 0
		for _, from := range StatusSequence {
			for _, to := range StatusSequence {
				if from.CanTransition(to) {
					legalCount++
				}
			}
		}
		assert.Equal(t, len(StatusSequence)-1, legalCount)
	})
}

func TestParseBookingStatus(t *testing.T) {
	t.Run("Known Status", func(t *testing.T) {
		status, err := ParseBookingStatus("TESTING_IN_PROGRESS")
		assert.NoError(t, err)
		assert.Equal(t, StatusTestingInProgress, status)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		_, err := ParseBookingStatus("CANCELLED")
		assert.Error(t, err)
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		_, err := ParseBookingStatus("booked")
		assert.Error(t, err)
	})
}

func TestBookingStatus_AtOrPast(t *testing.T) {
	assert.True(t, StatusVerified.AtOrPast(StatusSampleReceived))
	assert.True(t, StatusVerified.AtOrPast(StatusVerified))
	assert.False(t, StatusBooked.AtOrPast(StatusCollectorAssigned))
}

func TestBookingStatus_Display(t *testing.T) {
	assert.Equal(t, "At Lab", StatusSampleReceived.Display())
	assert.Equal(t, "Doctor Verified", StatusVerified.Display())
	assert.Equal(t, "Delivered", StatusReportDelivered.Display())
}

func TestBooking_Clone(t *testing.T) {
	booking := &Booking{
		OrderID: "BK-20260901-AB12CD",
		Status:  StatusVerified,
		Results: []LabResult{
			{Parameter: "HDL", Value: 35, Unit: "mg/dL", Range: ">40", IsAbnormal: true},
		},
	}

	snapshot := booking.Clone()
	snapshot.Results[0].Value = 99
	snapshot.Status = StatusReportDelivered

	assert.Equal(t, float64(35), booking.Results[0].Value)
	assert.Equal(t, StatusVerified, booking.Status)
}
