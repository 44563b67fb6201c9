package panel

import (
	"context"
	"fmt"
	"log"
	"strings"

	"filepickers-sample/picker"
	"filepickers-sample/resultlog"
)

// Runner performs one pick per call and records the outcome.
type Runner struct {
	Picker picker.Picker
	Log    *resultlog.Log
}

// NewRunner returns a runner writing to results.
func NewRunner(p picker.Picker, results *resultlog.Log) *Runner {
	return &Runner{Picker: p, Log: results}
}

// Run builds the options for kind from st, invokes the picker and logs the
// result. Every failure ends up in the log; Run never panics on picker errors.
func (r *Runner) Run(ctx context.Context, kind Kind, st State) {
	opts, err := st.Options(kind, r.logChoice)
	if err != nil {
		r.fail(kind, err)
		return
	}

	switch kind {
	case SingleFile:
		res, err := r.Picker.PickSingleFile(ctx, opts)
		r.single(kind, "File", res, err)
	case MultipleFiles:
		res, err := r.Picker.PickMultipleFiles(ctx, opts)
		r.multiple(kind, res, err)
	case SaveFile:
		res, err := r.Picker.PickSaveFile(ctx, opts)
		r.single(kind, "File", res, err)
	case Folder:
		res, err := r.Picker.PickFolder(ctx, opts)
		r.single(kind, "Folder", res, err)
	}
}

func (r *Runner) logChoice(label string, extensions []string) {
	r.Log.Addf("Deserialized choice: %s with extensions: %s", label, strings.Join(extensions, ", "))
}

func (r *Runner) fail(kind Kind, err error) {
	log.Printf("%s failed: %v", kind, err)
	r.Log.Addf("Error in %s: %v", kind, err)
}

func (r *Runner) single(kind Kind, noun string, res *picker.Result, err error) {
	if err != nil {
		r.fail(kind, err)
		return
	}
	if res == nil {
		r.Log.Addf("%s: operation cancelled", kind)
		return
	}
	log.Printf("%s picked %s", kind, res.Path)
	r.Log.Addf("%s:\n%s: %s\nPath: %s", kind, noun, res.Name(), res.Path)
}

func (r *Runner) multiple(kind Kind, res []picker.Result, err error) {
	if err != nil {
		r.fail(kind, err)
		return
	}
	if len(res) == 0 {
		r.Log.Addf("%s: operation cancelled or no files selected", kind)
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d files", kind, len(res))
	for _, item := range res {
		fmt.Fprintf(&b, "\n- %s: %s", item.Name(), item.Path)
	}
	log.Printf("%s picked %d files", kind, len(res))
	r.Log.Add(b.String())
}
