package models

// ReminderTime is a persisted daily reminder. Time is a wall-clock
// "HH:mm" 24-hour string with no date or timezone; the consumer interprets
// it in local time and validates the format before persisting — the store
// does not.
type ReminderTime struct {
	ID   string
	Time string
}
