package model

type UserSettings struct {
	SoundEnabled                bool   `json:"soundEnabled"`
	DesktopNotificationsEnabled bool   `json:"desktopEnabled"`
	PersistHistory              bool   `json:"saveHistory"`
	AllowTelemetry              bool   `json:"allowDataCollection"`
	ColorTheme                  string `json:"theme"`
}
