package domain

// Default allocation values. The booking duration default is shared by the
// slot generator and the conflict detector and must stay consistent between
// them, so it lives here rather than at call sites.
const (
	DefaultDurationMinutes     = 120
	DefaultSlotIntervalMinutes = 30
	DefaultGuests              = 1
	DefaultOpenTime            = "11:00"
	DefaultCloseTime           = "22:00"
)

// Business validation constants
const (
	MinGuests                   = 1
	MaxGuests                   = 100
	MinTableCapacity            = 1
	MaxTableCapacity            = 50
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 240
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих столы и вместимость
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не влияющих на доступность слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}
