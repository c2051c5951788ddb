package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siftlab/sift/internal/conformance"
	"github.com/siftlab/sift/internal/filterdoc"
	"github.com/siftlab/sift/internal/translate"
)

// TranslateResult holds the output of a translate invocation.
type TranslateResult struct {
	Case     string `json:"case"`
	Document string `json:"document"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <case.yaml>",
		Short: "Translate a predicate expression into a filter document",
		Long: `Translate the expression of a case file into a rendered filter document.

The case file declares a document model and a predicate expression; the
expected-outcome clause is ignored. The rendered canonical filter
document is printed on success.

Exit codes:
  0 - Translation succeeded
  1 - The expression cannot be translated for this model
  2 - Command error (missing file, malformed case, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTranslate(opts *RootOptions, casePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(casePath)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("failed to read case file: %v", err), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("failed to read case file: %v", err))
	}

	c, err := conformance.ParseCase(data)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	formatter.VerboseLog("Loaded case %s (model %s)", c.Name, c.Model.Name)

	model, err := conformance.BuildModel(c.Model)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidField, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	root, err := conformance.BuildExpression(&c.Expression)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	f, err := translate.Translate(model, root)
	if err != nil {
		code := ErrCodeGeneric
		if tc, ok := translate.CodeOf(err); ok {
			code = string(tc)
		}
		_ = formatter.Error(code, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	rendered, err := filterdoc.RenderCanonical(f)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("rendering failed: %v", err), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("rendering failed: %v", err))
	}

	if opts.Format == "json" {
		return formatter.Success(TranslateResult{Case: c.Name, Document: string(rendered)})
	}
	fmt.Fprintln(formatter.Writer, string(rendered))
	return nil
}
