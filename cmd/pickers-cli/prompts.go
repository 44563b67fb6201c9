package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"filepickers-sample/panel"
)

var errInterrupted = errors.New("interrupted")

// prompter abstracts the terminal so the question flow can be tested.
type prompter interface {
	Confirm(message string, def bool) (bool, error)
	Input(message, def string) (string, error)
	Select(message string, options []string, def int) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(message string, options []string, def int) (int, error) {
	prompt := &survey.Select{Message: message, Options: options, PageSize: len(options)}
	if def >= 0 && def < len(options) {
		prompt.Default = options[def]
	}
	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		return -1, translateSurveyErr(err)
	}
	for i, o := range options {
		if o == out {
			return i, nil
		}
	}
	return -1, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupted
	}
	return err
}

var kindLabels = []string{"Pick single file", "Pick multiple files", "Pick save file", "Pick folder"}

// askKind asks which operation to run.
func askKind(p prompter) (panel.Kind, error) {
	i, err := p.Select("Picker operation", kindLabels, 0)
	if err != nil {
		return 0, err
	}
	return panel.Kind(i), nil
}

// optionalText asks whether an option should be set and, if so, its value.
func optionalText(p prompter, name, def string) (bool, string, error) {
	enabled, err := p.Confirm("Set "+name+"?", false)
	if err != nil || !enabled {
		return false, "", err
	}
	text, err := p.Input(name, def)
	return err == nil, text, err
}

func optionalIndex(p prompter, name string, options []string) (bool, int, error) {
	enabled, err := p.Confirm("Set "+name+"?", false)
	if err != nil || !enabled {
		return false, 0, err
	}
	i, err := p.Select(name, options, 0)
	return err == nil, i, err
}

// askState walks through the options that apply to kind.
func askState(p prompter, kind panel.Kind, d panel.Defaults) (panel.State, error) {
	var st panel.State
	var err error

	if st.CommitButton, st.CommitButtonText, err = optionalText(p, "commit button text", d.CommitButtonText); err != nil {
		return st, err
	}
	if kind == panel.SingleFile || kind == panel.MultipleFiles {
		if st.ViewMode, st.ViewModeIndex, err = optionalIndex(p, "view mode", panel.ViewModeLabels); err != nil {
			return st, err
		}
	}
	if st.StartLocation, st.StartLocationIndex, err = optionalIndex(p, "suggested start location", panel.LocationLabels); err != nil {
		return st, err
	}
	if st.StartFolder, st.StartFolderPath, err = optionalText(p, "suggested start folder", d.StartFolder); err != nil {
		return st, err
	}
	if st.SuggestedFolder, st.SuggestedFolderPath, err = optionalText(p, "suggested folder", d.SuggestedFolder); err != nil {
		return st, err
	}

	switch kind {
	case panel.SingleFile, panel.MultipleFiles:
		if st.FileTypeFilter, st.FileTypeFilterText, err = optionalText(p, "file type filter", d.FileTypeFilter); err != nil {
			return st, err
		}
		if st.OpenChoices, st.OpenChoicesJSON, err = optionalText(p, "file type choices", d.OpenChoices); err != nil {
			return st, err
		}
	case panel.SaveFile:
		if st.SaveChoices, st.SaveChoicesJSON, err = optionalText(p, "file type choices", d.SaveChoices); err != nil {
			return st, err
		}
		if st.SuggestedFileName, st.SuggestedFileNameText, err = optionalText(p, "suggested file name", d.SuggestedFileName); err != nil {
			return st, err
		}
		if st.DefaultExtension, st.DefaultExtensionText, err = optionalText(p, "default file extension", d.DefaultFileExtension); err != nil {
			return st, err
		}
	}
	return st, nil
}
