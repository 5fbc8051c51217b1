package cfg

import (
	"encoding/json"
	"fmt"
	"os"

	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/keys"
	"grabarr/internal/domain/paths"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"
	"grabarr/internal/validation"

	"github.com/spf13/viper"
)

// SettingsPath resolves the active settings file location, preferring the
// --config-file flag over the home-directory default.
func SettingsPath() string {
	if f := viper.GetString(keys.ConfigFile); f != "" {
		return f
	}
	return paths.SettingsFilePath
}

// LoadSettings reads the settings file at path, creating it with stock
// defaults first when missing. Keys absent from the file keep their
// defaults; unknown keys are ignored.
func LoadSettings(path string) (models.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaultSettings(path); err != nil {
			return models.Settings{}, err
		}
		logging.I("Created settings file with defaults: %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setSettingsDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	s := models.Settings{
		DefaultResolution:   v.GetInt(keys.DefaultResolution),
		DefaultAudioQuality: v.GetInt(keys.DefaultAudioQuality),
		VideoFragments:      v.GetInt(keys.VideoFragments),
		AudioFragments:      v.GetInt(keys.AudioFragments),
		SubtitleLanguage:    v.GetString(keys.SubtitleLanguage),
		VideoBufferSize:     v.GetString(keys.VideoBufferSize),
		AudioBufferSize:     v.GetString(keys.AudioBufferSize),
		HWAccel:             v.GetBool(keys.HWAccel),
		PreferredBackend:    v.GetString(keys.PreferredBackend),
		MobileCompat:        v.GetBool(keys.MobileCompat),
		CookiesFromBrowser:  v.GetString(keys.CookiesFromBrowser),
		CatalogTimeoutSecs:  v.GetInt(keys.CatalogTimeout),
	}

	// Bad values degrade to safe defaults rather than failing the session.
	if err := validation.ValidateBackend(s.PreferredBackend); err != nil {
		logging.W("Settings: %v, falling back to %q", err, consts.BackendAuto)
		s.PreferredBackend = consts.BackendAuto
	}
	if err := validation.ValidateCookieSource(s.CookiesFromBrowser); err != nil {
		logging.W("Settings: %v, ignoring cookie source", err)
		s.CookiesFromBrowser = ""
	}
	return s, nil
}

// setSettingsDefaults seeds every settings key so a sparse file still
// yields complete settings.
func setSettingsDefaults(v *viper.Viper) {
	d := models.DefaultSettings()
	v.SetDefault(keys.DefaultResolution, d.DefaultResolution)
	v.SetDefault(keys.DefaultAudioQuality, d.DefaultAudioQuality)
	v.SetDefault(keys.VideoFragments, d.VideoFragments)
	v.SetDefault(keys.AudioFragments, d.AudioFragments)
	v.SetDefault(keys.SubtitleLanguage, d.SubtitleLanguage)
	v.SetDefault(keys.VideoBufferSize, d.VideoBufferSize)
	v.SetDefault(keys.AudioBufferSize, d.AudioBufferSize)
	v.SetDefault(keys.HWAccel, d.HWAccel)
	v.SetDefault(keys.PreferredBackend, d.PreferredBackend)
	v.SetDefault(keys.MobileCompat, d.MobileCompat)
	v.SetDefault(keys.CookiesFromBrowser, d.CookiesFromBrowser)
	v.SetDefault(keys.CatalogTimeout, d.CatalogTimeoutSecs)
}

// writeDefaultSettings creates the settings file with stock values.
func writeDefaultSettings(path string) error {
	data, err := json.MarshalIndent(models.DefaultSettings(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default settings: %w", err)
	}
	if err := os.WriteFile(path, data, consts.PermsConfigFile); err != nil {
		return fmt.Errorf("failed to write settings file %q: %w", path, err)
	}
	return nil
}
