package picker

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

// Backend names accepted by New.
const (
	BackendNative  = "native"
	BackendClassic = "classic"
	BackendFyne    = "fyne"
)

// New returns the backend called name. The Fyne backend needs a window.
func New(name string, w fyne.Window) (Picker, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendNative:
		return NewNative(), nil
	case BackendClassic:
		return NewClassic(), nil
	case BackendFyne:
		if w == nil {
			return nil, fmt.Errorf("picker backend %q needs a window", name)
		}
		return NewFyne(w), nil
	default:
		return nil, fmt.Errorf("unknown picker backend %q (want %s, %s or %s)", name, BackendNative, BackendClassic, BackendFyne)
	}
}
