package picker

import (
	"fmt"
	"os"
	"path/filepath"
)

// KnownFolder returns the directory behind a start location. Unspecified maps
// to "" so the backend uses its own default.
func KnownFolder(id LocationID) (string, error) {
	if !id.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLocation, int(id))
	}
	switch id {
	case Unspecified:
		return "", nil
	case ComputerFolder:
		return computerFolder(), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", id, err)
	}
	return userFolder(home, id), nil
}

// defaultFolderNames are the folder names used when the platform has no
// override for a location.
var defaultFolderNames = map[LocationID]string{
	DocumentsLibrary: "Documents",
	Desktop:          "Desktop",
	Downloads:        "Downloads",
	MusicLibrary:     "Music",
	PicturesLibrary:  "Pictures",
	VideosLibrary:    "Videos",
	Objects3D:        "3D Objects",
}

func defaultUserFolder(home string, id LocationID) string {
	return filepath.Join(home, defaultFolderNames[id])
}
