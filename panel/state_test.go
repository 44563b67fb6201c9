package panel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"filepickers-sample/choices"
	"filepickers-sample/picker"
)

func fullState() State {
	return State{
		CommitButton: true, CommitButtonText: "Go",
		ViewMode: true, ViewModeIndex: 1,
		StartLocation: true, StartLocationIndex: 3,
		StartFolder: true, StartFolderPath: "/start",
		SuggestedFolder: true, SuggestedFolderPath: "/folder",
		FileTypeFilter: true, FileTypeFilterText: ".png, .jpg",
		OpenChoices: true, OpenChoicesJSON: `{"Images": ["*.png"], "Text": ["*.txt"]}`,
		SaveChoices: true, SaveChoicesJSON: `{"Markdown": ["*.md"]}`,
		SuggestedFileName: true, SuggestedFileNameText: "notes",
		DefaultExtension: true, DefaultExtensionText: ".md",
	}
}

func TestStateOptionsPerKind(t *testing.T) {
	thumbnail := picker.ViewThumbnail
	downloads := picker.Downloads

	tests := []struct {
		kind Kind
		want picker.Options
	}{
		{SingleFile, picker.Options{
			CommitButtonText:       "Go",
			ViewMode:               &thumbnail,
			SuggestedStartLocation: &downloads,
			SuggestedStartFolder:   "/start",
			SuggestedFolder:        "/folder",
			FileTypeFilter:         []string{".png", ".jpg"},
			FileTypeChoices: choices.Set{
				{Label: "Images", Extensions: []string{"*.png"}},
				{Label: "Text", Extensions: []string{"*.txt"}},
			},
		}},
		{SaveFile, picker.Options{
			CommitButtonText:       "Go",
			SuggestedStartLocation: &downloads,
			SuggestedStartFolder:   "/start",
			SuggestedFolder:        "/folder",
			FileTypeChoices:        choices.Set{{Label: "Markdown", Extensions: []string{"*.md"}}},
			SuggestedFileName:      "notes",
			DefaultFileExtension:   ".md",
		}},
		{Folder, picker.Options{
			CommitButtonText:       "Go",
			SuggestedStartLocation: &downloads,
			SuggestedStartFolder:   "/start",
			SuggestedFolder:        "/folder",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := fullState().Options(tt.kind, nil)
			if err != nil {
				t.Fatalf("Options: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStateOptionsUnchecked(t *testing.T) {
	st := fullState()
	st = State{
		CommitButtonText:   st.CommitButtonText,
		OpenChoicesJSON:    "not json at all",
		FileTypeFilterText: st.FileTypeFilterText,
	}
	got, err := st.Options(SingleFile, nil)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if diff := cmp.Diff(picker.Options{}, got); diff != "" {
		t.Errorf("unchecked options leaked (-want +got):\n%s", diff)
	}
}

func TestStateOptionsEmptyFilterMeansAll(t *testing.T) {
	got, err := State{FileTypeFilter: true}.Options(MultipleFiles, nil)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if diff := cmp.Diff([]string{"*"}, got.FileTypeFilter); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestStateOptionsInvalidValuesPassThrough(t *testing.T) {
	// Index 4 and 10 are valid combo entries; rejecting them is the picker's job.
	st := State{StartLocation: true, StartLocationIndex: 10, ViewMode: true, ViewModeIndex: 2}
	got, err := st.Options(SingleFile, nil)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if *got.SuggestedStartLocation != picker.LocationID(10) || *got.ViewMode != picker.ViewMode(2) {
		t.Errorf("got location %v, view %v", *got.SuggestedStartLocation, *got.ViewMode)
	}
	if err := got.Validate(); !errors.Is(err, picker.ErrInvalidLocation) {
		t.Errorf("Validate() = %v, want ErrInvalidLocation", err)
	}
}

func TestStateOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		state State
	}{
		{"location out of range", Folder, State{StartLocation: true, StartLocationIndex: 11}},
		{"no location selected", Folder, State{StartLocation: true, StartLocationIndex: -1}},
		{"view mode out of range", SingleFile, State{ViewMode: true, ViewModeIndex: 3}},
		{"bad open choices", SingleFile, State{OpenChoices: true, OpenChoicesJSON: `{"X": "y"}`}},
		{"bad save choices", SaveFile, State{SaveChoices: true, SaveChoicesJSON: `[1]`}},
		{"unknown kind", Kind(9), State{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.state.Options(tt.kind, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestStateOptionsObserver(t *testing.T) {
	var labels []string
	observer := func(label string, _ []string) { labels = append(labels, label) }

	st := fullState()
	if _, err := st.Options(SingleFile, observer); err != nil {
		t.Fatalf("Options: %v", err)
	}
	if _, err := st.Options(Folder, observer); err != nil {
		t.Fatalf("Options: %v", err)
	}
	if diff := cmp.Diff([]string{"Images", "Text"}, labels); diff != "" {
		t.Errorf("observed labels mismatch (-want +got):\n%s", diff)
	}
}
