package domain

import "github.com/rms-platform/table-service/pkg/types"

// GenerateTimeSlots produces the ascending grid of candidate start times for
// one day, from openTime inclusive up to closeTime exclusive, stepping by
// intervalMinutes. A slot may not start at or after closing, but its
// occupancy window is allowed to run past closing.
func GenerateTimeSlots(openTime, closeTime types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	if _, err := openTime.Minutes(); err != nil {
		return nil, err
	}
	if _, err := closeTime.Minutes(); err != nil {
		return nil, err
	}
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotIntervalMinutes
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes wraps past midnight; a wrapped value would loop forever
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// intervalsOverlap reports whether [aStart, aEnd) and [bStart, bEnd)
// overlap. All values are minutes since midnight. The intervals overlap when
// aStart falls within [bStart, bEnd), or aEnd falls within (bStart, bEnd],
// or a fully contains b.
func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	if aStart >= bStart && aStart < bEnd {
		return true
	}
	if aEnd > bStart && aEnd <= bEnd {
		return true
	}
	return aStart <= bStart && aEnd >= bEnd
}

// OccupiedTables computes the set of table ids held by active bookings whose
// windows overlap the candidate slot. Bookings without an assigned table
// occupy nothing. Bookings with unparseable times are skipped.
func OccupiedTables(slotStart types.TimeString, durationMinutes int, bookings []*Booking) map[int64]struct{} {
	occupied := make(map[int64]struct{})

	start, err := slotStart.Minutes()
	if err != nil {
		return occupied
	}
	end := start + durationMinutes

	for _, booking := range bookings {
		if !booking.IsActive() || booking.TableID == nil {
			continue
		}

		bStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		bEnd := bStart + booking.Duration(durationMinutes)

		if intervalsOverlap(start, end, bStart, bEnd) {
			occupied[*booking.TableID] = struct{}{}
		}
	}

	return occupied
}

// TableOccupied reports whether the given table is held during the window by
// any active booking other than excludeBookingID
func TableOccupied(tableID int64, slotStart types.TimeString, durationMinutes int, bookings []*Booking, excludeBookingID int64) bool {
	start, err := slotStart.Minutes()
	if err != nil {
		return false
	}
	end := start + durationMinutes

	for _, booking := range bookings {
		if booking.ID == excludeBookingID {
			continue
		}
		if !booking.IsActive() || booking.TableID == nil || *booking.TableID != tableID {
			continue
		}

		bStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		bEnd := bStart + booking.Duration(durationMinutes)

		if intervalsOverlap(start, end, bStart, bEnd) {
			return true
		}
	}

	return false
}

// CapacityVerdict is the capacity resolution for one slot
type CapacityVerdict struct {
	SingleTableFit    bool
	CombinationFit    bool
	Available         bool
	RemainingCapacity int
}

// ResolveCapacity decides whether the party fits into the free tables of a
// slot. A single free table covering the party size, or the aggregate
// capacity of all free tables doing so, both make the slot available.
// Combination fit only proves the slot is satisfiable; a booking is still
// assigned at most one table.
//
// With zero active tables every slot is unavailable with zero remaining
// capacity, never an "everything is open" default.
func ResolveCapacity(activeTables []*Table, occupied map[int64]struct{}, guests int) CapacityVerdict {
	if len(activeTables) == 0 {
		return CapacityVerdict{}
	}

	var verdict CapacityVerdict
	availableCount := 0

	for _, table := range activeTables {
		if !table.IsActive {
			continue
		}
		if _, taken := occupied[table.ID]; taken {
			continue
		}

		availableCount++
		verdict.RemainingCapacity += table.Capacity
		if table.Seats(guests) {
			verdict.SingleTableFit = true
		}
	}

	verdict.CombinationFit = availableCount > 0 && verdict.RemainingCapacity >= guests
	verdict.Available = verdict.SingleTableFit || verdict.CombinationFit

	return verdict
}
