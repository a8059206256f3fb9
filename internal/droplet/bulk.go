package droplet

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jbweber/dop/internal/naming"
)

const (
	actionCreate  = "create"
	actionDestroy = "destroy"
)

var (
	confirmationTemplates = map[string]string{
		actionCreate:  "Following droplets will be created:\n%s\nProceed?",
		actionDestroy: "Following droplets will be destroyed:\n%s\nProceed?",
	}

	progressLabels = map[string]string{
		actionCreate:  "Initiating droplet creation",
		actionDestroy: "Initiating droplet destroy",
	}
)

// BulkOptions control how a batch of create or destroy calls is run.
type BulkOptions struct {
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool

	// Delay is waited before each API call.
	Delay time.Duration
}

// Result summarizes a bulk action.
type Result struct {
	// Names are the droplets the action was asked to handle.
	Names []string

	// Completed counts the API calls that succeeded.
	Completed int

	// Aborted is set when the user declined the confirmation.
	Aborted bool
}

// bulkAction is one create or destroy batch.
type bulkAction struct {
	verb  string
	names []string
	apply func(ctx context.Context, i int) error
}

// confirmationMessage builds the prompt listing every droplet, one per line.
func confirmationMessage(verb string, names []string) (string, error) {
	tmpl, ok := confirmationTemplates[verb]
	if !ok {
		return "", fmt.Errorf("unknown droplet action %q", verb)
	}
	return fmt.Sprintf(tmpl, naming.JoinNames(names)), nil
}

// progressLabel returns the progress indicator label for verb.
func progressLabel(verb string) (string, error) {
	label, ok := progressLabels[verb]
	if !ok {
		return "", fmt.Errorf("unknown droplet action %q", verb)
	}
	return label, nil
}

// runBulk confirms and then applies the action to every item in order.
//
// An empty batch prints "Nothing to do.", a declined confirmation prints
// "Aborted."; neither is an error. The first failing API call stops the
// batch.
func runBulk(ctx context.Context, a bulkAction, term Terminal, opts BulkOptions) (Result, error) {
	result := Result{Names: a.names}

	if len(a.names) == 0 {
		term.Notice("Nothing to do.")
		return result, nil
	}

	message, err := confirmationMessage(a.verb, a.names)
	if err != nil {
		return result, err
	}
	label, err := progressLabel(a.verb)
	if err != nil {
		return result, err
	}

	if !opts.AssumeYes {
		ok, err := term.Confirm(message)
		if err != nil {
			return result, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			term.Notice("Aborted.")
			result.Aborted = true
			return result, nil
		}
	}

	progress := term.StartProgress(label, len(a.names))
	defer progress.Done()

	for i, name := range a.names {
		progress.Advance(name)

		if err := pause(ctx, opts.Delay); err != nil {
			return result, err
		}

		log.Printf("Running %s for droplet %s...", a.verb, name)
		if err := a.apply(ctx, i); err != nil {
			return result, fmt.Errorf("failed to %s droplet %s: %w", a.verb, name, err)
		}
		result.Completed++
	}

	return result, nil
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
