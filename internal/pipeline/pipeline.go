// Package pipeline wires the list, detect, report and delete stages into a
// single run.
package pipeline

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ThomasCrouzet/simdedupe/internal/dedupe"
	"github.com/ThomasCrouzet/simdedupe/internal/registry"
	"github.com/ThomasCrouzet/simdedupe/internal/report"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
	"github.com/ThomasCrouzet/simdedupe/internal/ui"
)

// Outcome says how a run finished.
type Outcome int

const (
	// NothingFound means no duplicates existed and nothing was deleted.
	NothingFound Outcome = iota
	// Deleted means every duplicate had a delete attempted.
	Deleted
	// Declined means duplicates were found but the user kept them.
	Declined
)

func (o Outcome) String() string {
	switch o {
	case NothingFound:
		return "nothing-found"
	case Deleted:
		return "deleted"
	case Declined:
		return "declined"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ConfirmFunc asks whether n duplicates should be deleted.
type ConfirmFunc func(n int) (bool, error)

type Options struct {
	Executor simctl.Executor
	Resolver registry.TimeResolver
	Out      io.Writer
	Log      zerolog.Logger
	// Confirm is consulted before deleting. Nil deletes without asking.
	Confirm ConfirmFunc
}

// Run lists every simulator, reports duplicates and deletes them.
func Run(opts Options) (Outcome, error) {
	fmt.Fprintln(opts.Out, ui.Bold("Searching for simulators..."))

	devices, err := registry.List(opts.Executor, opts.Resolver)
	if err != nil {
		return NothingFound, err
	}
	opts.Log.Debug().Int("devices", len(devices)).Msg("registry listed")

	result := dedupe.Detect(devices)
	for _, p := range result.Pairs {
		opts.Log.Debug().
			Str("duplicate", p.Duplicate.Identifier()).
			Str("original", p.Original.Identifier()).
			Msg("duplicate found")
	}

	if err := report.Write(opts.Out, result); err != nil {
		return NothingFound, fmt.Errorf("writing report: %w", err)
	}
	if result.Count() == 0 {
		return NothingFound, nil
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(result.Count())
		if err != nil {
			return Declined, fmt.Errorf("confirming deletion: %w", err)
		}
		if !ok {
			fmt.Fprintln(opts.Out, ui.Hint("Keeping all simulators."))
			return Declined, nil
		}
	}

	fmt.Fprintln(opts.Out, "Deleting...")
	dedupe.DeleteAll(opts.Executor, result.Duplicates(), opts.Log)
	fmt.Fprintln(opts.Out, ui.Success("Done!"))

	return Deleted, nil
}
