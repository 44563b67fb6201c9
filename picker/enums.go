package picker

import "fmt"

// ViewMode selects how a file picker lays out items.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewThumbnail
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewList || m == ViewThumbnail
}

func (m ViewMode) String() string {
	switch m {
	case ViewList:
		return "List"
	case ViewThumbnail:
		return "Thumbnail"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

// LocationID names a well-known start location. The numbering leaves a gap at
// 4, a location that no longer exists.
type LocationID int

const (
	DocumentsLibrary LocationID = 0
	ComputerFolder   LocationID = 1
	Desktop          LocationID = 2
	Downloads        LocationID = 3
	MusicLibrary     LocationID = 5
	PicturesLibrary  LocationID = 6
	VideosLibrary    LocationID = 7
	Objects3D        LocationID = 8
	Unspecified      LocationID = 9
)

var locationNames = map[LocationID]string{
	DocumentsLibrary: "DocumentsLibrary",
	ComputerFolder:   "ComputerFolder",
	Desktop:          "Desktop",
	Downloads:        "Downloads",
	MusicLibrary:     "MusicLibrary",
	PicturesLibrary:  "PicturesLibrary",
	VideosLibrary:    "VideosLibrary",
	Objects3D:        "Objects3D",
	Unspecified:      "Unspecified",
}

// Valid reports whether l is a known location.
func (l LocationID) Valid() bool {
	_, ok := locationNames[l]
	return ok
}

func (l LocationID) String() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LocationID(%d)", int(l))
}
