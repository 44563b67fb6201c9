//go:build !windows

package picker

import (
	"os"
	"path/filepath"
	"strings"
)

// xdgVariables are the XDG user-dirs variables for each location.
var xdgVariables = map[LocationID]string{
	DocumentsLibrary: "XDG_DOCUMENTS_DIR",
	Desktop:          "XDG_DESKTOP_DIR",
	Downloads:        "XDG_DOWNLOAD_DIR",
	MusicLibrary:     "XDG_MUSIC_DIR",
	PicturesLibrary:  "XDG_PICTURES_DIR",
	VideosLibrary:    "XDG_VIDEOS_DIR",
}

func computerFolder() string {
	return string(filepath.Separator)
}

func userFolder(home string, id LocationID) string {
	if name, ok := xdgVariables[id]; ok {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			v = strings.ReplaceAll(v, "$HOME", home)
			return filepath.Clean(v)
		}
	}
	return defaultUserFolder(home, id)
}
