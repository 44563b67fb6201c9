package picker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// confirmFunc asks whether the existing file at path may be replaced.
type confirmFunc func(path string) (bool, error)

// finishSave applies DefaultFileExtension to the path a save dialog returned.
// When the dialog created the picked file, it is renamed to the final name.
// A final name that already exists is only used after confirm agrees; a
// refusal removes the created file and reports a cancel.
func finishSave(opts Options, picked string, created bool, confirm confirmFunc) (*Result, error) {
	final := opts.WithDefaultExtension(picked)
	if final == picked {
		return &Result{Path: picked}, nil
	}

	_, err := os.Stat(final)
	switch {
	case err == nil:
		ok, err := confirm(final)
		if err != nil || !ok {
			if created {
				removeIfEmpty(picked)
			}
			return nil, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking %s: %w", final, err)
	}

	if created {
		if err := os.Rename(picked, final); err != nil {
			return nil, fmt.Errorf("renaming %s: %w", picked, err)
		}
	}
	return &Result{Path: final}, nil
}

func removeIfEmpty(path string) {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() && fi.Size() == 0 {
		os.Remove(path)
	}
}

func replaceMessage(path string) string {
	return fmt.Sprintf("%s already exists.\nDo you want to replace it?", path)
}
