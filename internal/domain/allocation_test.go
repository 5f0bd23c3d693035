package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rms-platform/table-service/pkg/ptr"
	"github.com/rms-platform/table-service/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name     string
		open     types.TimeString
		close    types.TimeString
		interval int
		expected []types.TimeString
	}{
		{
			name:     "hourly_grid",
			open:     "10:00",
			close:    "13:00",
			interval: 60,
			expected: []types.TimeString{"10:00", "11:00", "12:00"},
		},
		{
			name:     "half_hour_grid_excludes_close",
			open:     "21:00",
			close:    "22:00",
			interval: 30,
			expected: []types.TimeString{"21:00", "21:30"},
		},
		{
			name:     "last_slot_before_close",
			open:     "11:00",
			close:    "11:45",
			interval: 30,
			expected: []types.TimeString{"11:00", "11:30"},
		},
		{
			name:     "open_equals_close",
			open:     "12:00",
			close:    "12:00",
			interval: 30,
			expected: []types.TimeString{},
		},
		{
			name:     "zero_interval_falls_back_to_default",
			open:     "11:00",
			close:    "12:00",
			interval: 0,
			expected: []types.TimeString{"11:00", "11:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateTimeSlots(tt.open, tt.close, tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slots)
		})
	}
}

func TestGenerateTimeSlots_InvalidTimes(t *testing.T) {
	_, err := GenerateTimeSlots("bad", "22:00", 30)
	assert.Error(t, err)

	_, err = GenerateTimeSlots("11:00", "25:00", 30)
	assert.Error(t, err)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		expected                       bool
	}{
		{name: "a_starts_inside_b", aStart: 630, aEnd: 750, bStart: 600, bEnd: 720, expected: true},
		{name: "a_ends_inside_b", aStart: 540, aEnd: 660, bStart: 600, bEnd: 720, expected: true},
		{name: "a_contains_b", aStart: 540, aEnd: 780, bStart: 600, bEnd: 720, expected: true},
		{name: "b_contains_a", aStart: 630, aEnd: 690, bStart: 600, bEnd: 720, expected: true},
		{name: "identical", aStart: 600, aEnd: 720, bStart: 600, bEnd: 720, expected: true},
		{name: "back_to_back_a_before_b", aStart: 480, aEnd: 600, bStart: 600, bEnd: 720, expected: false},
		{name: "back_to_back_a_after_b", aStart: 720, aEnd: 840, bStart: 600, bEnd: 720, expected: false},
		{name: "disjoint", aStart: 300, aEnd: 360, bStart: 600, bEnd: 720, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, intervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestOccupiedTables(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, Status: StatusConfirmed, TableID: ptr.Ptr(int64(10)), StartTime: "18:00", DurationMinutes: 120},
		{ID: 2, Status: StatusPending, TableID: ptr.Ptr(int64(11)), StartTime: "19:00", DurationMinutes: 120},
		// Отмененная бронь не занимает стол
		{ID: 3, Status: StatusCancelled, TableID: ptr.Ptr(int64(12)), StartTime: "18:00", DurationMinutes: 120},
		// Бронь без стола не занимает ничего
		{ID: 4, Status: StatusConfirmed, TableID: nil, StartTime: "18:00", DurationMinutes: 120},
		// Бронь с нечитаемым временем пропускается
		{ID: 5, Status: StatusConfirmed, TableID: ptr.Ptr(int64(13)), StartTime: "bad", DurationMinutes: 120},
	}

	occupied := OccupiedTables("18:30", 120, bookings)

	assert.Contains(t, occupied, int64(10))
	assert.Contains(t, occupied, int64(11))
	assert.NotContains(t, occupied, int64(12))
	assert.NotContains(t, occupied, int64(13))
	assert.Len(t, occupied, 2)
}

func TestOccupiedTables_NoOverlap(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, Status: StatusConfirmed, TableID: ptr.Ptr(int64(10)), StartTime: "12:00", DurationMinutes: 120},
	}

	// Окно 14:00-16:00 стык-в-стык с 12:00-14:00 - пересечения нет
	occupied := OccupiedTables("14:00", 120, bookings)
	assert.Empty(t, occupied)
}

func TestOccupiedTables_DefaultDuration(t *testing.T) {
	// Бронь без явной длительности получает длительность слота
	bookings := []*Booking{
		{ID: 1, Status: StatusConfirmed, TableID: ptr.Ptr(int64(10)), StartTime: "18:00", DurationMinutes: 0},
	}

	occupied := OccupiedTables("19:00", 120, bookings)
	assert.Contains(t, occupied, int64(10))
}

func TestTableOccupied(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, Status: StatusConfirmed, TableID: ptr.Ptr(int64(10)), StartTime: "18:00", DurationMinutes: 120},
	}

	assert.True(t, TableOccupied(10, "18:30", 120, bookings, 0))
	assert.False(t, TableOccupied(11, "18:30", 120, bookings, 0))
	// Собственная бронь исключается из проверки
	assert.False(t, TableOccupied(10, "18:30", 120, bookings, 1))
	// Непересекающееся окно
	assert.False(t, TableOccupied(10, "20:00", 120, bookings, 0))
}

func TestResolveCapacity(t *testing.T) {
	tables := []*Table{
		{ID: 1, Capacity: 2, IsActive: true},
		{ID: 2, Capacity: 4, IsActive: true},
		{ID: 3, Capacity: 6, IsActive: true},
	}

	tests := []struct {
		name              string
		occupied          map[int64]struct{}
		guests            int
		wantAvailable     bool
		wantSingleFit     bool
		wantCombination   bool
		wantRemaining     int
	}{
		{
			name:            "single_table_fit",
			occupied:        map[int64]struct{}{},
			guests:          4,
			wantAvailable:   true,
			wantSingleFit:   true,
			wantCombination: true,
			wantRemaining:   12,
		},
		{
			name:            "combination_fit_only",
			occupied:        map[int64]struct{}{},
			guests:          10,
			wantAvailable:   true,
			wantSingleFit:   false,
			wantCombination: true,
			wantRemaining:   12,
		},
		{
			name:            "no_fit",
			occupied:        map[int64]struct{}{},
			guests:          13,
			wantAvailable:   false,
			wantSingleFit:   false,
			wantCombination: false,
			wantRemaining:   12,
		},
		{
			name:            "largest_table_taken",
			occupied:        map[int64]struct{}{3: {}},
			guests:          5,
			wantAvailable:   true,
			wantSingleFit:   false,
			wantCombination: true,
			wantRemaining:   6,
		},
		{
			name:            "all_tables_taken",
			occupied:        map[int64]struct{}{1: {}, 2: {}, 3: {}},
			guests:          1,
			wantAvailable:   false,
			wantSingleFit:   false,
			wantCombination: false,
			wantRemaining:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ResolveCapacity(tables, tt.occupied, tt.guests)
			assert.Equal(t, tt.wantAvailable, verdict.Available)
			assert.Equal(t, tt.wantSingleFit, verdict.SingleTableFit)
			assert.Equal(t, tt.wantCombination, verdict.CombinationFit)
			assert.Equal(t, tt.wantRemaining, verdict.RemainingCapacity)
		})
	}
}

func TestResolveCapacity_NoActiveTables(t *testing.T) {
	// Ноль столов - все слоты недоступны, никакого "все открыто" по умолчанию
	verdict := ResolveCapacity(nil, map[int64]struct{}{}, 2)
	assert.False(t, verdict.Available)
	assert.Equal(t, 0, verdict.RemainingCapacity)

	verdict = ResolveCapacity([]*Table{}, map[int64]struct{}{}, 2)
	assert.False(t, verdict.Available)
	assert.Equal(t, 0, verdict.RemainingCapacity)
}

func TestResolveCapacity_InactiveTableSkipped(t *testing.T) {
	tables := []*Table{
		{ID: 1, Capacity: 4, IsActive: false},
		{ID: 2, Capacity: 2, IsActive: true},
	}

	verdict := ResolveCapacity(tables, map[int64]struct{}{}, 4)
	assert.False(t, verdict.SingleTableFit)
	assert.Equal(t, 2, verdict.RemainingCapacity)
	assert.False(t, verdict.Available)
}
