package main

import (
	"fmt"
	"os"
	"time"

	"daterelative/internal/config"
	"daterelative/internal/payload"
	"daterelative/internal/render"
	"daterelative/internal/utils"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runFormat is the plugin pipeline: read, select, format, print.
func runFormat(cmd *cobra.Command, opts config.Options, clock func() time.Time) error {
	now, err := opts.ResolveNow(clock)
	if err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	if isTerminal(stdin) {
		utils.Debugf("Reading task JSON from a terminal, finish input with Ctrl-D")
	}

	var task *payload.Payload
	err = utils.LogOperationf("decode %s", func() error {
		var decodeErr error
		task, decodeErr = payload.Decode(stdin)
		return decodeErr
	}, "task payload from stdin")
	if err != nil {
		return err
	}

	dateStr, field := task.DateValue()
	if field == "" {
		utils.Debugf("No date in %v, printing empty line", payload.DateFields)
	} else {
		utils.Debugf("Using %s=%q (now=%s, mode=%s)", field, dateStr, now.Format(time.RFC3339), opts.Mode)
	}

	result := opts.Formatter().Evaluate(dateStr, now)
	utils.Infof("Formatted %q as %q", dateStr, result.Label)

	// Hints are opt-in: by default only the date keys are consulted
	var width int
	var color bool
	if opts.HostHints {
		width, color = task.Hints()
	}

	out := cmd.OutOrStdout()
	line := render.NewRenderer(out, !isTerminal(out)).Render(result, width, color)
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// isTerminal reports whether the stream is an interactive terminal.
func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
