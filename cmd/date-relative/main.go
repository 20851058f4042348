package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"daterelative/internal/config"
	"daterelative/internal/utils"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, time.Now))
}

// execute runs the command and returns the process exit status.
// Any failure is reported as a single "Error: " line on stderr.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer, clock func() time.Time) int {
	rootCmd := newRootCmd(clock)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if suggestion := utils.SuggestionFor(err); suggestion != "" {
			utils.Debugf("Suggestion: %s", suggestion)
		}
		fmt.Fprintf(stderr, "Error: %s\n", utils.ErrorMessage(err))
		return 1
	}
	return 0
}

// newRootCmd builds the plugin command. clock supplies the current instant
// unless --now overrides it.
func newRootCmd(clock func() time.Time) *cobra.Command {
	opts := config.DefaultOptions()
	var calendarDays bool

	rootCmd := &cobra.Command{
		Use:   "date-relative",
		Short: "Relative date formatter for gosynctasks views",
		Long: `Reads one task as JSON from stdin and prints its date relative to today.

The date is taken from due_date, then start_date, then created. Output is one
line: "Today", "Tomorrow", "Yesterday", "in N days" or "N days ago". A date
that cannot be parsed is printed unchanged, and a task without dates prints
an empty line.

Examples:
  echo '{"due_date": "2025-01-31T00:00:00Z"}' | date-relative
  date-relative --now 2025-01-29T09:00:00Z < task.json
  date-relative --host-hints < task.json   # apply the host's width and color
  date-relative sample | date-relative`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			utils.SetVerboseMode(opts.Verbose)
			utils.SetLogOutput(cmd.ErrOrStderr())

			if calendarDays {
				opts.Mode = "calendar"
			}
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, clock)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Now, "now", "", "format against this instant (RFC 3339) instead of the current time")
	rootCmd.PersistentFlags().BoolVar(&calendarDays, "calendar-days", false, "count UTC calendar days instead of elapsed 24h periods")
	rootCmd.PersistentFlags().BoolVar(&opts.HostHints, "host-hints", false, "apply the width and color keys sent by the host")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(newSampleCmd(&opts, clock))

	return rootCmd
}
