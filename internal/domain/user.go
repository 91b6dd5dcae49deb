package domain

import "time"

// DefaultNotifyTime is the notification time assigned to new users.
const DefaultNotifyTime = "20:00"

// User is a bot subscriber with their notification settings.
type User struct {
	ChatID     int64
	Username   string
	FirstName  string
	LastName   string
	Address    string // free text, used only for textile-collection reminders
	NotifyTime string // wall-clock "HH:MM" in the reference timezone
	Enabled    bool
	CreatedAt  time.Time // UTC
	UpdatedAt  time.Time // UTC
}
