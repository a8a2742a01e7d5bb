package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playgrid/turf-booking-service/pkg/types"
)

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule(7)

	assert.Equal(t, int64(7), s.OwnerID)
	assert.Nil(t, s.TurfID)
	assert.True(t, s.IsOwnerDefault())
	assert.Equal(t, DefaultOpenHour, s.OpenHour)
	assert.Equal(t, DefaultCloseHour, s.CloseHour)
	assert.Equal(t, DefaultSlotDurationMinutes, s.SlotDurationMinutes)

	// 06:00-23:00 по часу = 17 слотов
	assert.Equal(t, 17, s.SlotsPerDay())
}

func TestTurfSchedule_SlotsPerDay(t *testing.T) {
	tests := []struct {
		open, close, duration int
		want                  int
	}{
		{6, 23, 60, 17},
		{8, 20, 90, 8},
		{9, 18, 60, 9},
		{6, 23, 45, 22}, // 1020 / 45, неполный слот отбрасывается
		{10, 11, 60, 1},
		{6, 23, 0, 0}, // защита от деления на ноль
	}

	for _, tt := range tests {
		s := &TurfSchedule{OpenHour: tt.open, CloseHour: tt.close, SlotDurationMinutes: tt.duration}
		assert.Equal(t, tt.want, s.SlotsPerDay(), "window %d-%d, duration %d", tt.open, tt.close, tt.duration)
	}
}

func TestTurfSchedule_IsOwnerDefault(t *testing.T) {
	turfID := int64(42)

	specific := &TurfSchedule{TurfID: &turfID}
	assert.False(t, specific.IsOwnerDefault())

	ownerWide := &TurfSchedule{TurfID: nil}
	assert.True(t, ownerWide.IsOwnerDefault())
}

func TestFormatSlotDisplay(t *testing.T) {
	assert.Equal(t, "06:00 AM - 07:00 AM", FormatSlotDisplay("06:00", "07:00"))
	assert.Equal(t, "10:00 PM - 11:00 PM", FormatSlotDisplay("22:00", "23:00"))
	assert.Equal(t, "12:00 PM - 01:00 PM", FormatSlotDisplay("12:00", "13:00"))

	// Некорректные границы отдаются как есть
	assert.Equal(t, "25:99 - 07:00", FormatSlotDisplay(types.TimeString("25:99"), types.TimeString("07:00")))
}
