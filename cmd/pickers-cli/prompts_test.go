package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"filepickers-sample/panel"
	"filepickers-sample/picker"
	"filepickers-sample/resultlog"
)

// scripted answers prompts in order and records the questions asked.
type scripted struct {
	confirms []bool
	inputs   []string
	selects  []int
	asked    []string
	err      error
}

func (s *scripted) Confirm(message string, def bool) (bool, error) {
	s.asked = append(s.asked, message)
	if s.err != nil {
		return false, s.err
	}
	if len(s.confirms) == 0 {
		return false, nil
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func (s *scripted) Input(message, def string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.inputs) == 0 {
		return def, nil
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scripted) Select(message string, options []string, def int) (int, error) {
	s.asked = append(s.asked, message)
	if len(s.selects) == 0 {
		return def, nil
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

var testDefaults = panel.Defaults{
	CommitButtonText:     "Pick",
	FileTypeFilter:       ".txt",
	OpenChoices:          `{"Text": ["*.txt"]}`,
	SaveChoices:          `{"Markdown": ["*.md"]}`,
	SuggestedFileName:    "untitled",
	DefaultFileExtension: ".txt",
}

func TestAskStateSaveFile(t *testing.T) {
	// commit, location, start folder, suggested folder, choices, name, extension
	p := &scripted{
		confirms: []bool{true, true, false, false, true, true, false},
		inputs:   []string{"Save here", "", "report"},
		selects:  []int{5},
	}
	st, err := askState(p, panel.SaveFile, testDefaults)
	if err != nil {
		t.Fatalf("askState: %v", err)
	}
	want := panel.State{
		CommitButton:          true,
		CommitButtonText:      "Save here",
		StartLocation:         true,
		StartLocationIndex:    5,
		SaveChoices:           true,
		SaveChoicesJSON:       "",
		SuggestedFileName:     true,
		SuggestedFileNameText: "report",
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	for _, q := range p.asked {
		if strings.Contains(q, "view mode") || strings.Contains(q, "file type filter") {
			t.Errorf("save pick asked %q", q)
		}
	}
}

func TestAskStateOpenUsesDefaults(t *testing.T) {
	// commit, view mode, location, start folder, suggested folder, filter, choices
	p := &scripted{confirms: []bool{false, true, false, false, false, true, true}}
	st, err := askState(p, panel.MultipleFiles, testDefaults)
	if err != nil {
		t.Fatalf("askState: %v", err)
	}
	if !st.ViewMode || st.ViewModeIndex != 0 {
		t.Errorf("view mode = %v/%d", st.ViewMode, st.ViewModeIndex)
	}
	if st.FileTypeFilterText != ".txt" || st.OpenChoicesJSON != testDefaults.OpenChoices {
		t.Errorf("defaults not used: %q / %q", st.FileTypeFilterText, st.OpenChoicesJSON)
	}
	if st.SaveChoices || st.SuggestedFileName {
		t.Errorf("save options set on an open pick: %+v", st)
	}
}

func TestAskStateFolderSkipsFileOptions(t *testing.T) {
	p := &scripted{}
	if _, err := askState(p, panel.Folder, testDefaults); err != nil {
		t.Fatalf("askState: %v", err)
	}
	want := []string{
		"Set commit button text?",
		"Set suggested start location?",
		"Set suggested start folder?",
		"Set suggested folder?",
	}
	if diff := cmp.Diff(want, p.asked); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
}

func TestAskStateInterrupted(t *testing.T) {
	p := &scripted{err: errInterrupted}
	if _, err := askState(p, panel.SingleFile, testDefaults); !errors.Is(err, errInterrupted) {
		t.Errorf("err = %v, want errInterrupted", err)
	}
}

type stubPicker struct {
	folder string
}

func (s *stubPicker) PickSingleFile(ctx context.Context, o picker.Options) (*picker.Result, error) {
	return nil, nil
}

func (s *stubPicker) PickMultipleFiles(ctx context.Context, o picker.Options) ([]picker.Result, error) {
	return nil, nil
}

func (s *stubPicker) PickSaveFile(ctx context.Context, o picker.Options) (*picker.Result, error) {
	return nil, nil
}

func (s *stubPicker) PickFolder(ctx context.Context, o picker.Options) (*picker.Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &picker.Result{Path: s.folder}, nil
}

func TestPickOnce(t *testing.T) {
	results := resultlog.New()
	r := panel.NewRunner(&stubPicker{folder: "/srv/share"}, results)
	p := &scripted{selects: []int{int(panel.Folder)}}

	if err := pickOnce(context.Background(), p, r, testDefaults); err != nil {
		t.Fatalf("pickOnce: %v", err)
	}
	if !strings.Contains(results.Text(), "Path: /srv/share") {
		t.Errorf("log = %q", results.Text())
	}
}

func TestPickOnceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := resultlog.New()
	r := panel.NewRunner(&stubPicker{}, results)
	if err := pickOnce(ctx, &scripted{}, r, testDefaults); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if results.Len() != 0 {
		t.Errorf("log should be empty, got %q", results.Text())
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Error("other errors should pass through")
	}
	if translateSurveyErr(nil) != nil {
		t.Error("nil should stay nil")
	}
}
