package cfg_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"grabarr/internal/cfg"
	"grabarr/internal/models"
)

func TestLoadSettings_CreatesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	got, err := cfg.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(got, models.DefaultSettings()) {
		t.Fatalf("fresh settings = %+v, want stock defaults", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not created: %v", err)
	}
}

func TestLoadSettings_SparseFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	sparse := []byte(`{"default_resolution": 720, "subtitle_language": "de", "hw_accel": false}`)
	if err := os.WriteFile(path, sparse, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := cfg.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got.DefaultResolution != 720 {
		t.Fatalf("resolution = %d, want 720", got.DefaultResolution)
	}
	if got.SubtitleLanguage != "de" {
		t.Fatalf("subtitle language = %q, want de", got.SubtitleLanguage)
	}
	if got.HWAccel {
		t.Fatal("hw_accel = true, want false")
	}

	def := models.DefaultSettings()
	if got.DefaultAudioQuality != def.DefaultAudioQuality ||
		got.VideoFragments != def.VideoFragments ||
		got.VideoBufferSize != def.VideoBufferSize ||
		got.CatalogTimeoutSecs != def.CatalogTimeoutSecs {
		t.Fatalf("unset keys lost their defaults: %+v", got)
	}
}

func TestLoadSettings_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LoadSettings(path); err == nil {
		t.Fatal("expected error for malformed settings file")
	}
}

func TestLoadSettings_WrittenFileRoundTrips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	first, err := cfg.LoadSettings(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := cfg.LoadSettings(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reload mismatch:\n%+v\n%+v", first, second)
	}
}
