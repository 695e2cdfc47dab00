package cmd

import (
	"github.com/jeeftor/perfscript/internal/filesystem"
	"github.com/jeeftor/perfscript/internal/logging"
	"github.com/jeeftor/perfscript/internal/render"
	"github.com/jeeftor/perfscript/internal/tui"
	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [script-file]",
		Short: "Browse a parsed script interactively",
		Long: `Open a parsed script in a scrollable terminal viewer.

Keys:
  ↑/k ↓/j       scroll
  pgup/pgdown   page
  g/G           top/bottom
  n             toggle line numbers
  ?             full help
  q/esc         quit

When stdout is not a terminal the script is printed as text instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filesystem.CheckFileExists(args[0]); err != nil {
				return err
			}

			script, err := a.parser().ParseFile(args[0])
			if err != nil {
				return err
			}

			if !isTerminal(a.stdout) {
				logging.Debug("Stdout is not a terminal, printing instead of viewing")
				return render.WriteScript(a.stdout, script, render.FormatText, render.Options{LineNumbers: true})
			}
			return tui.Run(script)
		},
	}
}
