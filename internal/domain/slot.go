package domain

import "github.com/rms-platform/table-service/pkg/types"

// TimeSlot is a derived per-slot availability verdict. It is never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	Available bool

	// RemainingCapacity is the sum of capacities of all free active tables
	// during this slot. It is reported even for unavailable slots, so a
	// nonzero value alone does not imply availability.
	RemainingCapacity int
}
