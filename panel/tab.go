package panel

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Defaults are the initial values of the text inputs.
type Defaults struct {
	CommitButtonText     string
	StartFolder          string
	SuggestedFolder      string
	FileTypeFilter       string
	OpenChoices          string
	SaveChoices          string
	SuggestedFileName    string
	DefaultFileExtension string
}

// Form holds the option controls.
type Form struct {
	commitCheck *widget.Check
	commitText  *widget.Entry

	viewModeCheck  *widget.Check
	viewModeSelect *widget.Select

	locationCheck  *widget.Check
	locationSelect *widget.Select

	startFolderCheck *widget.Check
	startFolderText  *widget.Entry

	folderCheck *widget.Check
	folderText  *widget.Entry

	filterCheck *widget.Check
	filterText  *widget.Entry

	openChoicesCheck *widget.Check
	openChoicesText  *widget.Entry

	saveChoicesCheck *widget.Check
	saveChoicesText  *widget.Entry

	fileNameCheck *widget.Check
	fileNameText  *widget.Entry

	extensionCheck *widget.Check
	extensionText  *widget.Entry
}

func newEntry(text, placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	e.SetText(text)
	return e
}

func newChoicesEntry(text string) *widget.Entry {
	e := widget.NewMultiLineEntry()
	e.SetPlaceHolder(`{"Images": ["*.png", "*.jpg"]}`)
	e.SetText(text)
	e.SetMinRowsVisible(3)
	return e
}

// NewForm builds the controls. Every option starts unchecked.
func NewForm(d Defaults) *Form {
	f := &Form{
		commitCheck: widget.NewCheck("Commit button text", nil),
		commitText:  newEntry(d.CommitButtonText, "Pick"),

		viewModeCheck:  widget.NewCheck("View mode", nil),
		viewModeSelect: widget.NewSelect(ViewModeLabels, nil),

		locationCheck:  widget.NewCheck("Suggested start location", nil),
		locationSelect: widget.NewSelect(LocationLabels, nil),

		startFolderCheck: widget.NewCheck("Suggested start folder", nil),
		startFolderText:  newEntry(d.StartFolder, "/path/to/start"),

		folderCheck: widget.NewCheck("Suggested folder", nil),
		folderText:  newEntry(d.SuggestedFolder, "/path/to/folder"),

		filterCheck: widget.NewCheck("File type filter", nil),
		filterText:  newEntry(d.FileTypeFilter, ".txt, .png (empty = *)"),

		openChoicesCheck: widget.NewCheck("Open picker file type choices", nil),
		openChoicesText:  newChoicesEntry(d.OpenChoices),

		saveChoicesCheck: widget.NewCheck("Save picker file type choices", nil),
		saveChoicesText:  newChoicesEntry(d.SaveChoices),

		fileNameCheck: widget.NewCheck("Suggested file name", nil),
		fileNameText:  newEntry(d.SuggestedFileName, "untitled.txt"),

		extensionCheck: widget.NewCheck("Default file extension", nil),
		extensionText:  newEntry(d.DefaultFileExtension, ".txt"),
	}
	f.viewModeSelect.SetSelectedIndex(0)
	f.locationSelect.SetSelectedIndex(0)
	return f
}

// State snapshots the controls. Call it on the UI goroutine.
func (f *Form) State() State {
	return State{
		CommitButton:          f.commitCheck.Checked,
		CommitButtonText:      f.commitText.Text,
		ViewMode:              f.viewModeCheck.Checked,
		ViewModeIndex:         f.viewModeSelect.SelectedIndex(),
		StartLocation:         f.locationCheck.Checked,
		StartLocationIndex:    f.locationSelect.SelectedIndex(),
		StartFolder:           f.startFolderCheck.Checked,
		StartFolderPath:       f.startFolderText.Text,
		SuggestedFolder:       f.folderCheck.Checked,
		SuggestedFolderPath:   f.folderText.Text,
		FileTypeFilter:        f.filterCheck.Checked,
		FileTypeFilterText:    f.filterText.Text,
		OpenChoices:           f.openChoicesCheck.Checked,
		OpenChoicesJSON:       f.openChoicesText.Text,
		SaveChoices:           f.saveChoicesCheck.Checked,
		SaveChoicesJSON:       f.saveChoicesText.Text,
		SuggestedFileName:     f.fileNameCheck.Checked,
		SuggestedFileNameText: f.fileNameText.Text,
		DefaultExtension:      f.extensionCheck.Checked,
		DefaultExtensionText:  f.extensionText.Text,
	}
}

func (f *Form) content() fyne.CanvasObject {
	return container.New(layout.NewFormLayout(),
		f.commitCheck, f.commitText,
		f.viewModeCheck, f.viewModeSelect,
		f.locationCheck, f.locationSelect,
		f.startFolderCheck, f.startFolderText,
		f.folderCheck, f.folderText,
		f.filterCheck, f.filterText,
		f.openChoicesCheck, f.openChoicesText,
		f.saveChoicesCheck, f.saveChoicesText,
		f.fileNameCheck, f.fileNameText,
		f.extensionCheck, f.extensionText,
	)
}

// Tab is the whole sample panel: options, pick buttons and results.
type Tab struct {
	Form    *Form
	Buttons map[Kind]*widget.Button
	Content fyne.CanvasObject
}

// NewTab lays out the panel. Each button snapshots the form and runs the pick
// on its own goroutine; ctx is handed to every pick.
func NewTab(ctx context.Context, w fyne.Window, r *Runner, d Defaults) *Tab {
	form := NewForm(d)
	t := &Tab{Form: form, Buttons: map[Kind]*widget.Button{}}

	pick := func(kind Kind, label string) *widget.Button {
		btn := widget.NewButton(label, func() {
			st := form.State()
			go r.Run(ctx, kind, st)
		})
		t.Buttons[kind] = btn
		return btn
	}
	buttons := container.NewGridWithColumns(4,
		pick(SingleFile, "Pick single file"),
		pick(MultipleFiles, "Pick multiple files"),
		pick(SaveFile, "Pick save file"),
		pick(Folder, "Pick folder"),
	)

	results := widget.NewLabelWithData(r.Log.Binding())
	results.Wrapping = fyne.TextWrapWord
	resultsScroll := container.NewVScroll(results)
	resultsScroll.SetMinSize(fyne.NewSize(400, 200))

	logMenu := newMenuButton("Log",
		fyne.NewMenuItem("Clear", r.Log.Clear),
		fyne.NewMenuItem("Copy to clipboard", func() {
			w.Clipboard().SetContent(r.Log.Text())
		}),
	)
	resultsHeader := container.NewHBox(
		widget.NewLabelWithStyle("Results", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		logMenu,
	)

	top := container.NewVBox(
		widget.NewLabelWithStyle("Picker options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form.content(),
		buttons,
		widget.NewSeparator(),
		resultsHeader,
	)
	t.Content = container.NewBorder(top, nil, nil, nil, resultsScroll)
	return t
}
