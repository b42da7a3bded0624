package entity

import "eva-support-be/internal/constant"

type UserSettings struct {
	SoundEnabled                bool
	DesktopNotificationsEnabled bool
	PersistHistory              bool
	AllowTelemetry              bool
	ColorTheme                  string
}

// DefaultUserSettings mirrors the defaults the client ships with.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		SoundEnabled:                false,
		DesktopNotificationsEnabled: false,
		PersistHistory:              true,
		AllowTelemetry:              true,
		ColorTheme:                  constant.ThemeBlue,
	}
}
