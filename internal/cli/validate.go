package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ModelDiagnostic describes one problem found in a model definition.
type ModelDiagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Models []string          `json:"models,omitempty"`
	Errors []ModelDiagnostic `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <models-dir>",
		Short: "Validate CUE model definitions",
		Long: `Validate CUE model definitions and build their serializer registries.

Checks syntax, field declarations, mapping representations, and enum
tables without translating anything. Reports diagnostics with source
positions where available.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, modelsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrors := LoadModels(modelsDir, LoadModeCollectAll)

	// Load-level failures (missing directory, no files, CUE build
	// errors) are command errors, not validation findings.
	if result == nil && len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, modelsDir)

	var diagnostics []ModelDiagnostic
	for _, err := range loadErrors {
		diagnostics = append(diagnostics, toDiagnostic(err))
	}

	if len(diagnostics) > 0 {
		return outputValidationErrors(formatter, result.Order, diagnostics)
	}
	return outputValidateSuccess(formatter, result.Order)
}

// toDiagnostic converts a load error into a reportable diagnostic.
func toDiagnostic(err error) ModelDiagnostic {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		d := ModelDiagnostic{Code: loadErr.Code, Message: loadErr.Message}
		if loadErr.Pos.IsValid() {
			d.File = loadErr.Pos.Filename()
			d.Line = loadErr.Pos.Line()
		}
		return d
	}
	return ModelDiagnostic{Code: ErrCodeGeneric, Message: err.Error()}
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, models []string) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Models: models})
	}

	fmt.Fprintf(formatter.Writer, "✓ %d model(s) valid\n", len(models))
	for _, name := range models {
		fmt.Fprintf(formatter.Writer, "  %s\n", name)
	}
	return nil
}

// outputValidationErrors outputs validation diagnostics.
func outputValidationErrors(formatter *OutputFormatter, models []string, diags []ModelDiagnostic) error {
	if formatter.Format == "json" {
		response := Response{
			Status: "error",
			Data:   ValidationResult{Valid: false, Models: models, Errors: diags},
			Error: &ResponseError{
				Code:    diags[0].Code,
				Message: diags[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(diags)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, d := range diags {
		if d.File != "" {
			fmt.Fprintf(formatter.Writer, "%s:%d\n", d.File, d.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", d.Code, d.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(diags)))
}
