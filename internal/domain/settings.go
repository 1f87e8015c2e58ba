package domain

// ReminderSettings is the persisted part of an account's reminder
// configuration. Delivery of the reminders themselves is out of scope.
type ReminderSettings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
	Days    []int  `json:"days"`
}

// Settings holds per-account preferences that survive across devices.
// Purely cosmetic preferences (theme, haptics) stay client-side.
type Settings struct {
	Reminders ReminderSettings `json:"reminders"`
}

// DefaultSettings returns the settings for a fresh account: reminders off,
// 7 AM, every day of the week.
func DefaultSettings() *Settings {
	return &Settings{
		Reminders: ReminderSettings{
			Enabled: false,
			Time:    "07:00",
			Days:    []int{0, 1, 2, 3, 4, 5, 6},
		},
	}
}
