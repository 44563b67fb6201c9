// Package panel maps the sample's controls to picker options, runs the picks
// and writes the outcome to the results log.
package panel

import (
	"fmt"

	"filepickers-sample/choices"
	"filepickers-sample/picker"
)

// Kind is one of the four picker operations.
type Kind int

const (
	SingleFile Kind = iota
	MultipleFiles
	SaveFile
	Folder
)

func (k Kind) String() string {
	switch k {
	case SingleFile:
		return "PickSingleFile"
	case MultipleFiles:
		return "PickMultipleFiles"
	case SaveFile:
		return "PickSaveFile"
	case Folder:
		return "PickFolder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ViewModeLabels are the view mode combo entries. The entry index is the
// view mode value; the last one is deliberately unknown to the picker.
var ViewModeLabels = []string{"List", "Thumbnail", "Invalid (2)"}

// LocationLabels are the start location combo entries. The entry index is the
// location value; 4 and 10 show how a picker rejects unknown locations.
var LocationLabels = []string{
	"DocumentsLibrary",
	"ComputerFolder",
	"Desktop",
	"Downloads",
	"HomeGroup (removed)",
	"MusicLibrary",
	"PicturesLibrary",
	"VideosLibrary",
	"Objects3D",
	"Unspecified",
	"Invalid (10)",
}

// State is a snapshot of the controls. Each option has an "enabled" flag and
// a value; disabled options leave the picker default in place.
type State struct {
	CommitButton     bool
	CommitButtonText string

	ViewMode      bool
	ViewModeIndex int

	StartLocation      bool
	StartLocationIndex int

	StartFolder     bool
	StartFolderPath string

	SuggestedFolder     bool
	SuggestedFolderPath string

	FileTypeFilter     bool
	FileTypeFilterText string

	OpenChoices     bool
	OpenChoicesJSON string

	SaveChoices     bool
	SaveChoicesJSON string

	SuggestedFileName     bool
	SuggestedFileNameText string

	DefaultExtension     bool
	DefaultExtensionText string
}

func viewModeAt(i int) (picker.ViewMode, error) {
	if i < 0 || i >= len(ViewModeLabels) {
		return 0, fmt.Errorf("invalid view mode selected (index %d)", i)
	}
	return picker.ViewMode(i), nil
}

func locationAt(i int) (picker.LocationID, error) {
	if i < 0 || i >= len(LocationLabels) {
		return 0, fmt.Errorf("invalid location selected (index %d)", i)
	}
	return picker.LocationID(i), nil
}

// Options builds the options one operation uses. File-type choices are
// parsed here; observer, when set, sees each parsed choice.
func (s State) Options(kind Kind, observer choices.Observer) (picker.Options, error) {
	var opts picker.Options

	if s.CommitButton {
		opts.CommitButtonText = s.CommitButtonText
	}
	if s.StartLocation {
		loc, err := locationAt(s.StartLocationIndex)
		if err != nil {
			return picker.Options{}, err
		}
		opts.SuggestedStartLocation = &loc
	}
	if s.StartFolder {
		opts.SuggestedStartFolder = s.StartFolderPath
	}
	if s.SuggestedFolder {
		opts.SuggestedFolder = s.SuggestedFolderPath
	}

	switch kind {
	case SingleFile, MultipleFiles:
		if s.ViewMode {
			mode, err := viewModeAt(s.ViewModeIndex)
			if err != nil {
				return picker.Options{}, err
			}
			opts.ViewMode = &mode
		}
		if s.FileTypeFilter {
			opts.FileTypeFilter = picker.ParseFileTypeFilter(s.FileTypeFilterText)
		}
		if s.OpenChoices {
			set, err := choices.Parse(s.OpenChoicesJSON, choices.WithObserver(observer))
			if err != nil {
				return picker.Options{}, err
			}
			opts.FileTypeChoices = set
		}
	case SaveFile:
		if s.SuggestedFileName {
			opts.SuggestedFileName = s.SuggestedFileNameText
		}
		if s.DefaultExtension {
			opts.DefaultFileExtension = s.DefaultExtensionText
		}
		if s.SaveChoices {
			set, err := choices.Parse(s.SaveChoicesJSON, choices.WithObserver(observer))
			if err != nil {
				return picker.Options{}, err
			}
			opts.FileTypeChoices = set
		}
	case Folder:
	default:
		return picker.Options{}, fmt.Errorf("unknown picker operation %d", int(kind))
	}
	return opts, nil
}
