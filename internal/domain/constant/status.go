package constant

// ReminderStatus is the persisted state of a reminder.
type ReminderStatus string

const (
	// ReminderPending covers both upcoming and overdue reminders.
	ReminderPending ReminderStatus = "pending"
	// ReminderDone marks a completed reminder.
	ReminderDone ReminderStatus = "done"
)

// Classification is the derived view of a reminder at a point in time.
// It is never stored.
type Classification string

const (
	ClassUpcoming  Classification = "upcoming"
	ClassOverdue   Classification = "overdue"
	ClassCompleted Classification = "completed"
)

// ReminderKind records what created a reminder.
type ReminderKind string

const (
	KindService ReminderKind = "service" // distance-based service record
	KindBattery ReminderKind = "battery" // time-based service record
	KindQuick   ReminderKind = "quick"   // quick-add from the reminders list
)

// ServiceStatus is the state of a scheduled service under a vehicle.
type ServiceStatus string

const (
	ServiceScheduled ServiceStatus = "scheduled"
)

// HistoryKind tells which action produced a history entry.
type HistoryKind string

const (
	HistoryReminder HistoryKind = "reminder"
	HistoryService  HistoryKind = "service"
)

// DistanceUnit is the user's preferred display unit.
type DistanceUnit string

const (
	UnitKm    DistanceUnit = "km"
	UnitMiles DistanceUnit = "mi"
)

// Valid reports whether u is a supported unit.
func (u DistanceUnit) Valid() bool {
	return u == UnitKm || u == UnitMiles
}

// Snooze offsets chosen by callers depending on the list the user acted from.
const (
	SnoozeDaysUpcoming = 7
	SnoozeDaysOverdue  = 3
)
