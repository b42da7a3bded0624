package dto

type UserSettingsResponse struct {
	SoundEnabled        bool   `json:"soundEnabled"`
	DesktopEnabled      bool   `json:"desktopEnabled"`
	SaveHistory         bool   `json:"saveHistory"`
	AllowDataCollection bool   `json:"allowDataCollection"`
	Theme               string `json:"theme"`
}

// UpdateUserSettingsRequest is a partial patch: nil fields keep their
// stored value.
type UpdateUserSettingsRequest struct {
	SoundEnabled        *bool   `json:"soundEnabled,omitempty"`
	DesktopEnabled      *bool   `json:"desktopEnabled,omitempty"`
	SaveHistory         *bool   `json:"saveHistory,omitempty"`
	AllowDataCollection *bool   `json:"allowDataCollection,omitempty"`
	Theme               *string `json:"theme,omitempty" validate:"omitempty,oneof=blue purple green"`
}
