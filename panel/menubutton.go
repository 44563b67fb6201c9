package panel

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// newMenuButton creates a button that pops up items right below itself.
func newMenuButton(label string, items ...*fyne.MenuItem) *widget.Button {
	btn := widget.NewButton(label+" ▼", nil)
	btn.OnTapped = func() {
		drv := fyne.CurrentApp().Driver()
		pos := drv.AbsolutePositionForObject(btn)
		pos.Y += btn.Size().Height
		widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), drv.CanvasForObject(btn), pos)
	}
	return btn
}
