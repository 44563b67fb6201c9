// Package picker opens file and folder pickers and reports what the user chose.
//
// Three backends implement Picker: Native (zenity, the platform dialogs),
// Classic (sqweek/dialog) and Fyne (dialogs drawn inside the app window).
// Options are validated when a pick starts, so an unrecognized view mode or
// start location surfaces as an error from the pick call itself.
package picker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"filepickers-sample/choices"
)

var (
	// ErrUnsupported is returned when a backend cannot perform an operation.
	ErrUnsupported = errors.New("operation not supported by this picker")
	// ErrInvalidViewMode is returned for a view mode outside the known set.
	ErrInvalidViewMode = errors.New("invalid view mode")
	// ErrInvalidLocation is returned for a start location outside the known set.
	ErrInvalidLocation = errors.New("invalid start location")
)

// Result is one picked item.
type Result struct {
	Path string
}

// Name returns the last element of the path.
func (r Result) Name() string {
	return filepath.Base(r.Path)
}

// Picker presents pickers. Single-item operations return a nil Result when the
// user cancels; PickMultipleFiles returns an empty slice.
type Picker interface {
	PickSingleFile(ctx context.Context, opts Options) (*Result, error)
	PickMultipleFiles(ctx context.Context, opts Options) ([]Result, error)
	PickSaveFile(ctx context.Context, opts Options) (*Result, error)
	PickFolder(ctx context.Context, opts Options) (*Result, error)
}

// Options configures one pick. Zero values mean "not set".
type Options struct {
	CommitButtonText       string
	ViewMode               *ViewMode
	SuggestedStartLocation *LocationID
	SuggestedStartFolder   string
	SuggestedFolder        string
	FileTypeFilter         []string
	FileTypeChoices        choices.Set
	SuggestedFileName      string
	DefaultFileExtension   string
}

// Validate reports unrecognized enum values.
func (o Options) Validate() error {
	if o.ViewMode != nil && !o.ViewMode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidViewMode, int(*o.ViewMode))
	}
	if o.SuggestedStartLocation != nil && !o.SuggestedStartLocation.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLocation, int(*o.SuggestedStartLocation))
	}
	return nil
}

// StartDir picks the folder a picker opens in: SuggestedFolder, then
// SuggestedStartFolder, then the folder behind SuggestedStartLocation.
// An empty result leaves the choice to the backend.
func (o Options) StartDir() (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	if dir := strings.TrimSpace(o.SuggestedFolder); dir != "" {
		return dir, nil
	}
	if dir := strings.TrimSpace(o.SuggestedStartFolder); dir != "" {
		return dir, nil
	}
	if o.SuggestedStartLocation != nil {
		return KnownFolder(*o.SuggestedStartLocation)
	}
	return "", nil
}

// WithDefaultExtension appends DefaultFileExtension to a saved path that has none.
func (o Options) WithDefaultExtension(path string) string {
	ext := strings.TrimSpace(o.DefaultFileExtension)
	if path == "" || ext == "" || filepath.Ext(path) != "" {
		return path
	}
	ext = strings.TrimPrefix(ext, "*")
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path + ext
}

// ParseFileTypeFilter splits a comma separated list of patterns. Blank items
// are dropped; empty input means every file type.
func ParseFileTypeFilter(text string) []string {
	var filters []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			filters = append(filters, part)
		}
	}
	if len(filters) == 0 {
		return []string{"*"}
	}
	return filters
}
