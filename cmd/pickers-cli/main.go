// Command pickers-cli runs the file pickers without a window: it asks for the
// picker options in the terminal, opens the chosen picker and prints the log.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"filepickers-sample/panel"
	"filepickers-sample/picker"
	"filepickers-sample/resultlog"
	"filepickers-sample/shared"
)

func main() {
	var (
		configFlag  = flag.String("config", shared.ConfigPath(), "Path to env.properties")
		backendFlag = flag.String("backend", "", "Picker backend (native, classic); defaults to PICKER_BACKEND or native")
		againFlag   = flag.Bool("again", false, "Keep asking for another pick until interrupted")
	)
	flag.Parse()

	shared.InitLogging(os.Stderr)

	cfg, err := shared.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	backend := *backendFlag
	if backend == "" {
		backend = cfg.Backend(picker.BackendNative)
	}
	if backend == picker.BackendFyne {
		log.Fatalf("backend %q needs a window; use native or classic", backend)
	}
	p, err := picker.New(backend, nil)
	if err != nil {
		log.Fatalf("picker: %v", err)
	}

	openChoices, err := cfg.OpenChoices()
	if err != nil {
		log.Printf("open choices: %v", err)
	}
	saveChoices, err := cfg.SaveChoices()
	if err != nil {
		log.Printf("save choices: %v", err)
	}
	defaults := panel.Defaults{
		CommitButtonText:     cfg.CommitButtonText(),
		StartFolder:          cfg.SuggestedStartFolder(),
		SuggestedFolder:      cfg.SuggestedFolder(),
		FileTypeFilter:       cfg.FileTypeFilter(),
		OpenChoices:          openChoices,
		SaveChoices:          saveChoices,
		SuggestedFileName:    cfg.SuggestedFileName(),
		DefaultFileExtension: cfg.DefaultFileExtension(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var prompts prompter = surveyPrompter{}
	for {
		results := resultlog.New()
		if err := pickOnce(ctx, prompts, panel.NewRunner(p, results), defaults); err != nil {
			if errors.Is(err, errInterrupted) || errors.Is(err, context.Canceled) {
				return
			}
			log.Fatalf("prompt: %v", err)
		}
		fmt.Print(results.Text())
		if !*againFlag {
			return
		}
	}
}

// pickOnce asks for one operation and its options, then runs it.
func pickOnce(ctx context.Context, prompts prompter, r *panel.Runner, d panel.Defaults) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	kind, err := askKind(prompts)
	if err != nil {
		return err
	}
	st, err := askState(prompts, kind, d)
	if err != nil {
		return err
	}
	r.Run(ctx, kind, st)
	return nil
}
