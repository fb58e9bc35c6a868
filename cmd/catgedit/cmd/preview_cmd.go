package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"catgedit/internal/tui"
)

// previewCmd lists the planned edits interactively before anything is
// written; the output file is only produced on confirmation.
var previewCmd = &cobra.Command{
	Use:   "preview [input.catg] [output.catg]",
	Short: "Interactively review planned edits before writing the output file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading %s", args[0])
		}
		return tui.Run(content, opts, args[1])
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
