package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"catgedit/internal/editor"
	"catgedit/internal/fields"
	"catgedit/internal/logging"
	"catgedit/pkg/catg"
)

var (
	flagSection    string
	flagField      string
	flagValue      string
	flagFieldsFile string
	flagDryRun     bool
	flagVerbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "catgedit [input.catg] [output.catg]",
	Short: "Edit RORB .catg files while preserving exact spacing and layout",
	Long: `catgedit replaces one field's value across all matching records in the NODES
or REACHES section of a RORB catchment file. Every other byte of the file is
left untouched: spacing, alignment, line endings, and unrelated records.

The field is selected by name (e.g. PrintFlag) or by 1-based token position
counted after the leading 'C' marker. The replacement value must fit in the
space the field already occupies; catgedit never shifts surrounding content.`,
	Example: `  # Set PrintFlag to 1 for all reaches
  catgedit input.catg output.catg --section REACHES --field PrintFlag --value 1

  # Set the sixth token of every node record
  catgedit input.catg output.catg --section NODES --field 6 --value 1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		if flagDryRun {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			plan, err := editor.BuildPlan(content, opts)
			if err != nil {
				return err
			}
			for _, e := range plan.Edits {
				fmt.Printf("line %d: %s\n", e.LineNo, strings.TrimRight(e.After, " "))
			}
			fmt.Printf("Dry run: %d records in %s section would be modified. Nothing written.\n",
				plan.Modified(), opts.Section)
			return nil
		}

		count, err := editor.EditFile(args[0], args[1], opts)
		if err != nil {
			return err
		}
		fmt.Printf("Successfully modified %d records in %s section.\n", count, opts.Section)
		fmt.Printf("Output written to: %s\n", args[1])
		return nil
	},
}

// buildOptions validates the shared flags into editor options.
func buildOptions() (editor.Options, error) {
	section, err := catg.ParseSection(flagSection)
	if err != nil {
		return editor.Options{}, err
	}

	tables := fields.Builtin()
	if flagFieldsFile != "" {
		tables, err = fields.Load(flagFieldsFile)
		if err != nil {
			return editor.Options{}, err
		}
	}

	return editor.Options{
		Section: section,
		Field:   flagField,
		Value:   flagValue,
		Tables:  tables,
	}, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "HINT: %s\n", hint)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSection, "section", "", "section to edit (NODES or REACHES)")
	pf.StringVar(&flagField, "field", "", "field name or 1-based token index after 'C'")
	pf.StringVar(&flagValue, "value", "", "new value to set (no whitespace allowed)")
	pf.StringVar(&flagFieldsFile, "fields-file", "", "TOML file overriding the builtin field tables")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log classification decisions to stderr")

	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report planned edits without writing output")

	for _, name := range []string{"section", "field", "value"} {
		if err := rootCmd.MarkPersistentFlagRequired(name); err != nil {
			panic(err)
		}
	}

	cobra.OnInitialize(func() {
		if err := logging.Initialize(flagVerbose); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: logger setup: %v\n", err)
		}
	})
}
