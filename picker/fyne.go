package picker

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Fyne shows Fyne's own file dialogs inside a window. Fyne dialogs take a
// single extension filter: the first file-type choice wins, then the plain
// filter. View mode is validated but has no effect, and there is no
// multi-select.
//
// Pick calls block until the dialog closes, so they must not run on the
// goroutine that delivers UI events.
type Fyne struct {
	Window fyne.Window
}

// NewFyne returns a backend that parents its dialogs to w.
func NewFyne(w fyne.Window) *Fyne {
	return &Fyne{Window: w}
}

type shower interface {
	Show()
	Hide()
}

type fyneOutcome struct {
	path string
	err  error
}

func (f *Fyne) configure(d *dialog.FileDialog, opts Options, withFilter bool) error {
	dir, err := opts.StartDir()
	if err != nil {
		return err
	}
	if opts.CommitButtonText != "" {
		d.SetConfirmText(opts.CommitButtonText)
	}
	if dir != "" {
		lister, err := storage.ListerForURI(storage.NewFileURI(dir))
		if err != nil {
			log.Printf("Fyne picker: cannot start in %s: %v", dir, err)
		} else {
			d.SetLocation(lister)
		}
	}
	if withFilter {
		if groups := opts.filterGroups(); len(groups) > 0 {
			exts, matchAll := extensions(groups[0].Patterns)
			if !matchAll && len(exts) > 0 {
				dotted := make([]string, 0, len(exts))
				for _, e := range exts {
					dotted = append(dotted, "."+e)
				}
				d.SetFilter(storage.NewExtensionFileFilter(dotted))
			}
		}
	}
	d.Resize(fyne.NewSize(800, 600))
	return nil
}

func (f *Fyne) wait(ctx context.Context, d shower, done <-chan fyneOutcome) (*Result, error) {
	d.Show()
	select {
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		if out.path == "" {
			return nil, nil
		}
		return &Result{Path: out.path}, nil
	case <-ctx.Done():
		d.Hide()
		return nil, ctx.Err()
	}
}

// PickSingleFile implements Picker.
func (f *Fyne) PickSingleFile(ctx context.Context, opts Options) (*Result, error) {
	done := make(chan fyneOutcome, 1)
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			sendOutcome(done, fyneOutcome{err: err})
			return
		}
		defer reader.Close()
		sendOutcome(done, fyneOutcome{path: reader.URI().Path()})
	}, f.Window)
	if err := f.configure(d, opts, true); err != nil {
		return nil, err
	}
	return f.wait(ctx, d, done)
}

// PickMultipleFiles implements Picker.
func (f *Fyne) PickMultipleFiles(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("fyne picker: multiple files: %w", ErrUnsupported)
}

// PickSaveFile implements Picker. Fyne creates the chosen file when the
// dialog is confirmed, so it is renamed when the default extension applies.
func (f *Fyne) PickSaveFile(ctx context.Context, opts Options) (*Result, error) {
	opts.FileTypeFilter = nil
	done := make(chan fyneOutcome, 1)
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			sendOutcome(done, fyneOutcome{err: err})
			return
		}
		defer writer.Close()
		sendOutcome(done, fyneOutcome{path: writer.URI().Path()})
	}, f.Window)
	if err := f.configure(d, opts, true); err != nil {
		return nil, err
	}
	if opts.SuggestedFileName != "" {
		d.SetFileName(opts.SuggestedFileName)
	}
	res, err := f.wait(ctx, d, done)
	if res == nil || err != nil {
		return res, err
	}
	return finishSave(opts, res.Path, true, f.confirmReplace(ctx))
}

func (f *Fyne) confirmReplace(ctx context.Context) confirmFunc {
	return func(final string) (bool, error) {
		answer := make(chan bool, 1)
		d := dialog.NewConfirm("Confirm Save As", replaceMessage(final), func(ok bool) {
			select {
			case answer <- ok:
			default:
			}
		}, f.Window)
		d.SetConfirmText("Replace")
		d.Show()
		select {
		case ok := <-answer:
			return ok, nil
		case <-ctx.Done():
			d.Hide()
			return false, ctx.Err()
		}
	}
}

// PickFolder implements Picker.
func (f *Fyne) PickFolder(ctx context.Context, opts Options) (*Result, error) {
	done := make(chan fyneOutcome, 1)
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			sendOutcome(done, fyneOutcome{err: err})
			return
		}
		sendOutcome(done, fyneOutcome{path: uri.Path()})
	}, f.Window)
	if err := f.configure(d, opts, false); err != nil {
		return nil, err
	}
	return f.wait(ctx, d, done)
}

func sendOutcome(ch chan<- fyneOutcome, out fyneOutcome) {
	select {
	case ch <- out:
	default:
	}
}
