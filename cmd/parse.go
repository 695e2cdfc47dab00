package cmd

import (
	"bytes"
	"io"

	"github.com/jeeftor/perfscript/internal/filesystem"
	"github.com/jeeftor/perfscript/internal/logging"
	"github.com/jeeftor/perfscript/internal/perfscript"
	"github.com/jeeftor/perfscript/internal/render"
	"github.com/jeeftor/perfscript/internal/utils"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	format      string
	output      string
	lineNumbers bool
}

func newParseCmd(a *app) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [script-file|dir]...",
		Short: "Parse performance scripts and print the result",
		Long: `Parse one or more performance-test scripts and print the project name,
the assertion timeout and the script body.

Each file is parsed independently. Directories are searched for *.ijperf,
*.perf and *.txt files. Parsing stops at the first invalid
%%assertTimeout value.

Examples:
  # Human readable summary
  perfscript parse typing.ijperf

  # Machine readable output
  perfscript parse typing.ijperf --format json

  # Every script in a directory, written to a file
  perfscript parse ./perf-scripts --format yaml --output build/scripts.yaml`,
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

			scripts, err := a.parseAll(paths)
			if err != nil {
				return err
			}

			var out io.Writer = a.stdout
			var buf bytes.Buffer
			if opts.output != "" {
				out = &buf
			}

			renderOpts := a.renderOptions(opts.lineNumbers)
			if opts.output != "" {
				renderOpts.Color = false
			}
			if err := render.WriteScripts(out, scripts, format, renderOpts); err != nil {
				return err
			}

			if opts.output != "" {
				if err := filesystem.WriteFileWithDirectory(opts.output, buf.Bytes(), 0644); err != nil {
					return err
				}
				logging.SaveFile(opts.output, string(format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format ("+render.FormatNames()+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "number body lines in text output")
	return cmd
}

// parseAll parses each path independently and stops at the first failure
func (a *app) parseAll(paths []string) ([]*perfscript.Script, error) {
	parser := a.parser()
	scripts := make([]*perfscript.Script, 0, len(paths))

	for _, path := range paths {
		logging.ParsingScript(path)
		ce := utils.NewCommandExecutor(logging.Logger(), "parse", path)

		var script *perfscript.Script
		err := ce.Stage("parse", func() error {
			var err error
			script, err = parser.ParseFile(path)
			return err
		})
		if err != nil {
			return nil, ce.Finish(err)
		}
		ce.Finish(nil)

		logging.ParsedScript(path, script.ProjectName(), script.LineCount())
		scripts = append(scripts, script)
	}
	return scripts, nil
}
