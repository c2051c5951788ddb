package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/siftlab/sift/internal/conformance"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // case filter (glob pattern)
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <cases-dir>",
		Short: "Run conformance cases",
		Long: `Run conformance case files against the translation engine.

Each case declares a model, a predicate expression, and an expected
filter document or error code. The run report carries a unique run id.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, malformed cases, etc.)

Examples:
  sift test ./cases
  sift test ./cases --filter "tags_*"
  sift test ./cases --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, casesDir string, cmd *cobra.Command) error {
	if info, err := os.Stat(casesDir); os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return NewExitError(ExitCommandError, fmt.Sprintf("cases directory not found: %s", casesDir))
	}

	loader := newFilteredLoader(conformance.NewDirLoader(casesDir), opts.Filter)

	names, err := loader.Names()
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("failed to list cases: %v", err))
	}
	if len(names) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(cmd, &conformance.Report{Pass: true, Cases: []conformance.CaseResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No cases found.")
		return nil
	}

	report, err := conformance.RunAll(loader)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("conformance run failed: %v", err))
	}

	if opts.Format == "json" {
		return outputTestJSON(cmd, report)
	}
	return outputTestText(cmd, report)
}

// filteredLoader narrows another loader to names matching a glob.
type filteredLoader struct {
	conformance.Loader
	pattern string
}

func newFilteredLoader(inner conformance.Loader, pattern string) conformance.Loader {
	if pattern == "" {
		return inner
	}
	return &filteredLoader{Loader: inner, pattern: pattern}
}

func (l *filteredLoader) Names() ([]string, error) {
	names, err := l.Loader.Names()
	if err != nil {
		return nil, err
	}
	var matched []string
	for _, name := range names {
		ok, err := filepath.Match(l.pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// outputTestJSON outputs the conformance report as JSON.
func outputTestJSON(cmd *cobra.Command, report *conformance.Report) error {
	status := "ok"
	failed := countFailed(report)
	if failed > 0 {
		status = "error"
	}

	response := Response{
		Status: status,
		Data:   report,
	}
	if failed > 0 {
		response.Error = &ResponseError{
			Code:    "E_TEST_FAILED",
			Message: fmt.Sprintf("%d case(s) failed", failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", failed))
	}
	return nil
}

// outputTestText outputs the conformance report as text.
func outputTestText(cmd *cobra.Command, report *conformance.Report) error {
	w := cmd.OutOrStdout()

	for _, res := range report.Cases {
		if res.Pass {
			fmt.Fprintf(w, "✓ %s\n", res.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", res.Name)
		for _, f := range res.Failures {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	failed := countFailed(report)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run %s: %d passed, %d failed, %d total\n",
		report.RunID, len(report.Cases)-failed, failed, len(report.Cases))

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", failed))
	}
	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}

func countFailed(report *conformance.Report) int {
	n := 0
	for _, res := range report.Cases {
		if !res.Pass {
			n++
		}
	}
	return n
}
