package main

import (
	"encoding/json"
	"fmt"
	"time"

	"daterelative/internal/config"
	"daterelative/internal/payload"
	"daterelative/internal/utils"

	"github.com/spf13/cobra"
)

// newSampleCmd creates the 'sample' command
func newSampleCmd(opts *config.Options, clock func() time.Time) *cobra.Command {
	var (
		width      int
		color      bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a sample task payload",
		Long: `Print an example task the way gosynctasks sends it to view plugins.

The due date is three days after now (or --now). Pipe the JSON back into the
plugin to try it out:

  date-relative sample | date-relative
  date-relative sample --width 5 --color | date-relative --host-hints

Use --yaml for a YAML rendering of the same document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.ResolveNow(clock)
			if err != nil {
				return err
			}

			data, err := payload.Encode(payload.SampleTask(now), "full", width, color)
			if err != nil {
				return fmt.Errorf("failed to encode sample task: %w", err)
			}

			var doc map[string]interface{}
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to decode sample task: %w", err)
			}

			if yamlOutput {
				return utils.OutputYAML(cmd.OutOrStdout(), doc)
			}
			return utils.OutputJSON(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "width hint to include in the payload")
	cmd.Flags().BoolVar(&color, "color", false, "color hint to include in the payload")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "output in YAML format")

	return cmd
}
