package config

import "os"

// SettingSource represents where a setting value comes from.
type SettingSource string

const (
	SettingSourceEnv    SettingSource = "env"
	SettingSourceConfig SettingSource = "config"
	SettingSourceNone   SettingSource = "none"
)

// SettingStatus represents the status of a credential-bearing setting.
type SettingStatus struct {
	Name   string        `json:"name"`
	Source SettingSource `json:"source"`
	IsSet  bool          `json:"is_set"`
	Masked string        `json:"masked,omitempty"` // e.g., "pos...ope"
}

// CheckSecrets returns the status of all settings that carry credentials,
// with values masked for display.
func CheckSecrets(cfg *Config) []SettingStatus {
	return []SettingStatus{
		checkSetting("Archive DSN", cfg.Archive.DSN, "RATIOSCOPE_ARCHIVE_DSN"),
	}
}

// checkSetting determines the source and masked form of a single setting.
func checkSetting(name, value, envVar string) SettingStatus {
	status := SettingStatus{Name: name, Source: SettingSourceNone}
	if value == "" {
		return status
	}
	status.IsSet = true
	status.Masked = maskKey(value)
	if os.Getenv(envVar) == value {
		status.Source = SettingSourceEnv
	} else {
		status.Source = SettingSourceConfig
	}
	return status
}

// maskKey masks a secret for display, keeping the first and last 3
// characters of anything longer than 8.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-3:]
}
