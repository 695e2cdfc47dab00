package cmd

import (
	"fmt"

	"github.com/jeeftor/perfscript/internal/perfscript"
	"github.com/spf13/cobra"
)

func newDurationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duration [literal]...",
		Short: "Convert assertion timeout literals to milliseconds",
		Long: `Convert %%assertTimeout values to milliseconds using the same rules as
the parser:

  500ms  milliseconds
  30s    seconds
  2M     minutes (upper case)
  1H     hours (upper case)
  750    bare number, milliseconds

Examples:
  perfscript duration 30s 2M 1H`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, literal := range args {
				millis, err := perfscript.ParseDuration(literal)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s\t%d\n", literal, millis)
			}
			return nil
		},
	}
}
