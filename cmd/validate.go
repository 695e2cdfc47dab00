package cmd

import (
	"fmt"

	"github.com/jeeftor/perfscript/internal/filesystem"
	"github.com/jeeftor/perfscript/internal/logging"
	"github.com/jeeftor/perfscript/internal/render"
	"github.com/jeeftor/perfscript/internal/utils"
	"github.com/jeeftor/perfscript/internal/validation"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	format string
	strict bool
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [script-file|dir]...",
		Short: "Check performance scripts for mistakes",
		Long: `Parse each script and report likely mistakes:

- missing %%project or %%assertTimeout directives
- a blank project name
- an empty script body
- lines starting with %% that are not a known directive (typos such as
  %%assertTimout are treated as script body, not as a directive)

Every file is checked even if an earlier one fails. Warnings do not fail the
command unless --strict is given.

Examples:
  perfscript validate typing.ijperf
  perfscript validate ./perf-scripts --strict
  perfscript validate ./perf-scripts --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format(cmd, opts.format)
			if err != nil {
				return err
			}

			paths, err := filesystem.ExpandScriptPaths(args)
			if err != nil {
				return err
			}

			if len(paths) == 0 {
				logging.UserWarnf("no script files found in %v", args)
			}

			parser := a.parser()
			parseErrors := utils.NewMultiError("parse")
			results := make([]*validation.Result, 0, len(paths))
			failed := 0

			for _, path := range paths {
				script, err := parser.ParseFile(path)
				if err != nil {
					logging.Fail(path, err.Error())
					parseErrors.Add(err)
					continue
				}

				result := validation.Validate(script)
				results = append(results, result)
				if result.Err(opts.strict) != nil {
					failed++
				}
			}

			if err := render.WriteValidations(a.stdout, results, format, a.renderOptions(false)); err != nil {
				return err
			}

			if err := parseErrors.ErrorOrNil(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d script(s)", utils.ErrValidationFailed, failed, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format ("+render.FormatNames()+")")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat warnings as errors")
	return cmd
}
