package model

import "time"

// AppSetting represents a key-value pair for global application configuration.
type AppSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Well-known setting keys.
const (
	// SettingGuestQuestionLimit is the free-trial answer ceiling for guests.
	SettingGuestQuestionLimit = "guest_question_limit"
	// SettingDefaultSessionSize is the default question count offered on
	// session creation.
	SettingDefaultSessionSize = "default_session_size"
	// SettingRegistrationOpen toggles self-service signup.
	SettingRegistrationOpen = "registration_open"
)

// PublicSettingKeys are the settings exposed on the unauthenticated endpoint.
var PublicSettingKeys = []string{
	SettingGuestQuestionLimit,
	SettingDefaultSessionSize,
	SettingRegistrationOpen,
}

// UpdateSettingsRequest is the payload for bulk updating settings.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
