// Package paths initializes Grabarr's filepaths, directories, etc.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"grabarr/internal/domain/consts"
)

const (
	gDir            = ".grabarr"
	downloadDirName = "Grabarr"

	combinedDirName  = "combined"
	videoDirName     = "video"
	audioDirName     = "audio"
	subtitlesDirName = "subtitles"
	logDirName       = "logs"
)

// File and directory path strings.
var (
	HomeGrabarrDir   string
	SettingsFilePath string

	DownloadRoot   string
	CombinedDir    string
	VideoDir       string
	AudioDir       string
	SubtitlesDir   string
	LogDir         string
	SessionLogPath string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}

	// Home Grabarr dir ~/.grabarr
	HomeGrabarrDir = filepath.Join(userHomeDir, gDir)
	if _, err := os.Stat(HomeGrabarrDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeGrabarrDir, consts.PermsConfigDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	SettingsFilePath = filepath.Join(HomeGrabarrDir, consts.SettingsFileName)
	return nil
}

// DefaultDownloadRoot returns the download root used when none is configured.
func DefaultDownloadRoot() (string, error) {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("failed to get home directory")
	}
	return filepath.Join(userHomeDir, "Downloads", downloadDirName), nil
}

// InitDownloadDirs creates the download taxonomy under root and stamps this
// run's log file path. An empty root falls back to the default location.
func InitDownloadDirs(root string) error {
	if root == "" {
		var err error
		if root, err = DefaultDownloadRoot(); err != nil {
			return err
		}
	}

	DownloadRoot = root
	CombinedDir = filepath.Join(root, combinedDirName)
	VideoDir = filepath.Join(root, videoDirName)
	AudioDir = filepath.Join(root, audioDirName)
	SubtitlesDir = filepath.Join(root, subtitlesDirName)
	LogDir = filepath.Join(root, logDirName)

	for _, dir := range []string{CombinedDir, VideoDir, AudioDir, SubtitlesDir, LogDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, consts.PermsDownloadDir); err != nil {
				return fmt.Errorf("failed to make directories: %w", err)
			}
		}
	}

	SessionLogPath = filepath.Join(LogDir,
		consts.LogFilePrefix+time.Now().Format(consts.LogTimeFormat)+consts.LogFileExt)
	return nil
}

// DirFor returns the output directory for a media kind.
func DirFor(kind consts.MediaKind) string {
	switch kind {
	case consts.KindVideoOnly:
		return VideoDir
	case consts.KindAudioOnly:
		return AudioDir
	case consts.KindSubsOnly:
		return SubtitlesDir
	default:
		return CombinedDir
	}
}
