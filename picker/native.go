package picker

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
)

// Native uses the platform dialogs through zenity. It needs no window.
type Native struct{}

// NewNative returns the zenity backend.
func NewNative() *Native {
	return &Native{}
}

func (n *Native) options(ctx context.Context, title string, opts Options) ([]zenity.Option, error) {
	dir, err := opts.StartDir()
	if err != nil {
		return nil, err
	}

	zopts := []zenity.Option{zenity.Context(ctx), zenity.Title(title)}
	if opts.CommitButtonText != "" {
		zopts = append(zopts, zenity.OKLabel(opts.CommitButtonText))
	}

	start := ""
	if dir != "" {
		// a trailing separator tells zenity the name is a directory
		start = strings.TrimRight(dir, `/\`) + string(filepath.Separator)
	}
	if opts.SuggestedFileName != "" {
		start = filepath.Join(dir, opts.SuggestedFileName)
	}
	if start != "" {
		zopts = append(zopts, zenity.Filename(start))
	}

	var filters zenity.FileFilters
	for _, g := range opts.filterGroups() {
		filters = append(filters, zenity.FileFilter{Name: g.Name, Patterns: g.Patterns})
	}
	if len(filters) > 0 {
		zopts = append(zopts, filters)
	}
	return zopts, nil
}

// PickSingleFile implements Picker.
func (n *Native) PickSingleFile(ctx context.Context, opts Options) (*Result, error) {
	opts.SuggestedFileName = ""
	zopts, err := n.options(ctx, "Pick a file", opts)
	if err != nil {
		return nil, err
	}
	path, err := zenity.SelectFile(zopts...)
	return single(path, err)
}

// PickMultipleFiles implements Picker.
func (n *Native) PickMultipleFiles(ctx context.Context, opts Options) ([]Result, error) {
	opts.SuggestedFileName = ""
	zopts, err := n.options(ctx, "Pick files", opts)
	if err != nil {
		return nil, err
	}
	paths, err := zenity.SelectFileMultiple(zopts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, Result{Path: p})
	}
	return results, nil
}

// PickSaveFile implements Picker.
func (n *Native) PickSaveFile(ctx context.Context, opts Options) (*Result, error) {
	opts.FileTypeFilter = nil
	zopts, err := n.options(ctx, "Save file", opts)
	if err != nil {
		return nil, err
	}
	zopts = append(zopts, zenity.ConfirmOverwrite())
	path, err := zenity.SelectFileSave(zopts...)
	res, err := single(path, err)
	if res == nil || err != nil {
		return res, err
	}
	return finishSave(opts, res.Path, false, func(final string) (bool, error) {
		err := zenity.Question(replaceMessage(final),
			zenity.Context(ctx), zenity.Title("Confirm Save As"), zenity.OKLabel("Replace"))
		if errors.Is(err, zenity.ErrCanceled) {
			return false, nil
		}
		return err == nil, err
	})
}

// PickFolder implements Picker.
func (n *Native) PickFolder(ctx context.Context, opts Options) (*Result, error) {
	opts.SuggestedFileName = ""
	opts.FileTypeFilter = nil
	opts.FileTypeChoices = nil
	zopts, err := n.options(ctx, "Pick a folder", opts)
	if err != nil {
		return nil, err
	}
	zopts = append(zopts, zenity.Directory())
	path, err := zenity.SelectFile(zopts...)
	return single(path, err)
}

func single(path string, err error) (*Result, error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	return &Result{Path: path}, nil
}
