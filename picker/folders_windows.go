//go:build windows

package picker

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// shellFolderValues are the value names under User Shell Folders.
var shellFolderValues = map[LocationID]string{
	DocumentsLibrary: "Personal",
	Desktop:          "Desktop",
	Downloads:        "{374DE290-123F-4565-9164-39C4925E467B}",
	MusicLibrary:     "My Music",
	PicturesLibrary:  "My Pictures",
	VideosLibrary:    "My Video",
	Objects3D:        "{31C0DD25-9439-4F12-BF41-7FF4EDA38722}",
}

func computerFolder() string {
	drive := os.Getenv("SystemDrive")
	if drive == "" {
		drive = "C:"
	}
	return drive + `\`
}

func userFolder(home string, id LocationID) string {
	fallback := defaultUserFolder(home, id)
	name, ok := shellFolderValues[id]
	if !ok {
		return fallback
	}

	k, err := registry.OpenKey(registry.CURRENT_USER, `Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`, registry.QUERY_VALUE)
	if err != nil {
		return fallback
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil || strings.TrimSpace(v) == "" {
		return fallback
	}
	v, err = registry.ExpandString(v)
	if err != nil || strings.TrimSpace(v) == "" {
		return fallback
	}
	return filepath.Clean(v)
}
