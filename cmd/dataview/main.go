package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agentstation/dataview/pkg/dataview"
	"github.com/agentstation/dataview/pkg/env"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// ReportSpec describes a dataview in a YAML report file. Headlines and rows
// keep their file order.
type ReportSpec struct {
	// RowHeader is the label of the identifying column; it must be present
	// (an empty string is allowed).
	RowHeader *string `json:"rowHeader"`
	// Headlines are scalar annotations rendered above the data rows.
	Headlines []HeadlineSpec `json:"headlines,omitempty"`
	// Rows are the data rows with their cells.
	Rows []RowSpec `json:"rows,omitempty"`
}

// HeadlineSpec is one name/value headline.
type HeadlineSpec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RowSpec is one data row and its cells.
type RowSpec struct {
	Name  string     `json:"name"`
	Cells []CellSpec `json:"cells,omitempty"`
}

// CellSpec is one column/value cell.
type CellSpec struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// newRootCmd builds the root command for dataview. Tests create a fresh
// command per run so flag state never leaks between executions.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataview [report-file]",
		Short: "Render a Geneos dataview from a YAML report file",
		Long: `dataview renders a Geneos dataview described by a YAML report file into
the comma-delimited dataview text format.

Headline and cell values may reference environment variables as ${NAME};
references are expanded before the dataview is built. Encrypted values
(prefixed +encs+) are decrypted when a Geneos key file is supplied with
--key-file. A .env file can be loaded first with --env-file.

Example:
  dataview ./report.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := renderOptions{}
			opts.sort, _ = cmd.Flags().GetBool("sort")
			opts.envFile, _ = cmd.Flags().GetString("env-file")
			opts.keyFile, _ = cmd.Flags().GetString("key-file")
			opts.verbose, _ = cmd.Flags().GetBool("verbose")
			return renderReport(args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		Version: dataview.Version,
		// Errors are reported once by main, in the ERROR: prefix form.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().BoolP("sort", "s", false, "sort data rows by row name (default: insertion order)")
	cmd.Flags().StringP("env-file", "e", "", "load environment variables from this .env file first")
	cmd.Flags().StringP("key-file", "k", "", "Geneos key file used to decrypt +encs+ values")
	cmd.Flags().BoolP("verbose", "v", false, "verbose output describing the parsed report")
	cmd.SetVersionTemplate(`{{.Version}}
`)

	// Add example usage
	cmd.Example = `  # Render a report
  dataview ./report.yaml

  # Render with rows sorted by name
  dataview -s ./report.yaml

  # Expand encrypted environment variables from a .env file
  dataview -e ./sampler.env -k /etc/geneos/key-file ./report.yaml

  # Show version
  dataview --version`

	return cmd
}

// renderOptions carries the command-line knobs into renderReport.
type renderOptions struct {
	sort    bool
	envFile string
	keyFile string
	verbose bool
}

// expander resolves ${NAME} references against the environment, decrypting
// encrypted values when a key file is available. Unset variables expand to
// the empty string; the first decryption failure is retained.
type expander struct {
	keyFile string
	err     error
}

func (e *expander) expand(s string) string {
	return os.Expand(s, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok {
			return ""
		}
		if e.keyFile != "" && env.IsEncrypted(value) {
			decrypted, err := env.Decrypt(value, e.keyFile)
			if err != nil {
				if e.err == nil {
					e.err = err
				}
				return ""
			}
			return decrypted
		}
		return value
	})
}

func renderReport(path string, opts renderOptions, out, errOut io.Writer) error {
	if opts.envFile != "" {
		if err := env.LoadFile(opts.envFile); err != nil {
			return fmt.Errorf("error loading env file: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading report file: %w", err)
	}

	var spec ReportSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("error parsing report file: %w", err)
	}

	ex := &expander{keyFile: opts.keyFile}
	builder := dataview.NewBuilder()
	if spec.RowHeader != nil {
		builder.SetRowHeader(*spec.RowHeader)
	}
	for _, h := range spec.Headlines {
		builder.AddHeadline(h.Name, ex.expand(h.Value))
	}
	for _, r := range spec.Rows {
		row := dataview.NewRow(r.Name)
		for _, c := range r.Cells {
			row.AddCell(c.Column, ex.expand(c.Value))
		}
		builder.AddRow(row)
	}
	if ex.err != nil {
		return fmt.Errorf("error expanding values: %w", ex.err)
	}

	if opts.sort {
		builder.SortRows()
	}

	if opts.verbose {
		fmt.Fprintf(errOut, "Read %d headlines and %d rows from %s\n", len(spec.Headlines), len(spec.Rows), path)
	}

	view, err := builder.Build()
	if err != nil {
		return fmt.Errorf("error building dataview: %w", err)
	}

	fmt.Fprintln(out, view)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
