package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// Classic uses sqweek/dialog. It blocks the calling goroutine until the
// dialog closes and has no multi-select, so PickMultipleFiles reports
// ErrUnsupported. The commit button label cannot be changed and is ignored.
type Classic struct{}

// NewClassic returns the sqweek/dialog backend.
func NewClassic() *Classic {
	return &Classic{}
}

func (c *Classic) fileBuilder(title string, opts Options) (*dialog.FileBuilder, error) {
	dir, err := opts.StartDir()
	if err != nil {
		return nil, err
	}

	b := dialog.File().Title(title)
	for _, g := range opts.filterGroups() {
		exts, matchAll := extensions(g.Patterns)
		if matchAll {
			exts = append(exts, "*")
		}
		b = b.Filter(g.Name, exts...)
	}
	if dir != "" {
		b = b.SetStartDir(dir)
	}
	if opts.SuggestedFileName != "" {
		b = b.SetStartFile(opts.SuggestedFileName)
	}
	return b, nil
}

// PickSingleFile implements Picker.
func (c *Classic) PickSingleFile(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.SuggestedFileName = ""
	b, err := c.fileBuilder("Pick a file", opts)
	if err != nil {
		return nil, err
	}
	return classicResult(b.Load())
}

// PickMultipleFiles implements Picker.
func (c *Classic) PickMultipleFiles(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("classic picker: multiple files: %w", ErrUnsupported)
}

// PickSaveFile implements Picker.
func (c *Classic) PickSaveFile(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.FileTypeFilter = nil
	b, err := c.fileBuilder("Save file", opts)
	if err != nil {
		return nil, err
	}
	res, err := classicResult(b.Save())
	if res == nil || err != nil {
		return res, err
	}
	return finishSave(opts, res.Path, false, func(final string) (bool, error) {
		return dialog.Message("%s", replaceMessage(final)).Title("Confirm Save As").YesNo(), nil
	})
}

// PickFolder implements Picker.
func (c *Classic) PickFolder(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := opts.StartDir()
	if err != nil {
		return nil, err
	}
	b := dialog.Directory().Title("Pick a folder")
	if dir != "" {
		b = b.SetStartDir(dir)
	}
	return classicResult(b.Browse())
}

func classicResult(path string, err error) (*Result, error) {
	if errors.Is(err, dialog.ErrCancelled) {
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
