package cmd

import (
	"fmt"

	"github.com/jeeftor/perfscript/internal/constants"
	"github.com/jeeftor/perfscript/internal/embedded"
	"github.com/jeeftor/perfscript/internal/logging"
	"github.com/spf13/cobra"
)

func newExamplesCmd(a *app) *cobra.Command {
	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "List, show or extract the bundled sample scripts",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List bundled sample scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scripts, err := embedded.ListEmbeddedScripts()
			if err != nil {
				return fmt.Errorf("error listing embedded scripts: %w", err)
			}
			for _, script := range scripts {
				fmt.Fprintln(a.stdout, script)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print a bundled sample script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := embedded.GetScriptContent(args[0])
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(content)
			return err
		},
	}

	var force bool
	extractCmd := &cobra.Command{
		Use:   "extract [dir]",
		Short: "Write the bundled sample scripts to a directory",
		Long: `Write every bundled sample script to a directory (default ` + constants.DefaultExamplesDir + `).

Existing files are not overwritten unless --force is given.

Examples:
  perfscript examples extract
  perfscript examples extract /tmp/perf --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDir := constants.DefaultExamplesDir
			if len(args) > 0 {
				targetDir = args[0]
			}

			written, err := embedded.ExtractScripts(targetDir, force)
			for _, path := range written {
				logging.ExtractTemplate.Log(path)
			}
			if err != nil {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			return nil
		},
	}
	extractCmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	examplesCmd.AddCommand(listCmd, showCmd, extractCmd)
	return examplesCmd
}
