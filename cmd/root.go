package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jeeftor/perfscript/internal/constants"
	"github.com/jeeftor/perfscript/internal/logging"
	"github.com/jeeftor/perfscript/internal/perfscript"
	"github.com/jeeftor/perfscript/internal/render"
	"github.com/jeeftor/perfscript/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app carries the state shared by every command of one root instance
type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
	noColor  bool

	stdout io.Writer
	stderr io.Writer
}

// NewRootCmd builds the perfscript command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), stdout: os.Stdout, stderr: os.Stderr}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Parse and inspect IDE performance-test scripts",
		Long: `perfscript reads IDE performance-test scripts and turns them into a
structured description: the target project, the assertion timeout and the
script body handed to the IDE.

Script Format:
  %%project <name>            # project the script runs against
  %%assertTimeout <duration>  # 500ms, 30s, 2M (minutes), 1H, or bare milliseconds
  %openFile src/Main.java     # every other line is script body

Configuration files are searched in this order:
1. ./.perfscript.yaml
2. ~/.perfscript.yaml
3. /etc/perfscript/.perfscript.yaml

Environment variables (PERFSCRIPT_*) override config file values.
Command-line flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.perfscript.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	// Bind flags to Viper
	a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		newParseCmd(a),
		newValidateCmd(a),
		newDurationCmd(a),
		newViewCmd(a),
		newExamplesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		logging.UserErrorf("%v", err)
	}
	return int(utils.ExitCode(err))
}

// init wires output, configuration and logging before any command runs
func (a *app) init(cmd *cobra.Command) error {
	a.stdout = cmd.OutOrStdout()
	a.stderr = cmd.ErrOrStderr()

	if err := a.initConfig(); err != nil {
		return err
	}

	logging.InitWithLevel(a.v.GetString("log_level"))
	logging.SetOutput(a.stderr)
	logging.SetUserOutput(a.stderr)
	logging.SetColor(a.color())

	logging.Debug("Logging initialized", "level", a.v.GetString("log_level"))
	if used := a.v.ConfigFileUsed(); used != "" {
		logging.LoadFile(used)
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix(constants.EnvPrefix)
	a.v.AutomaticEnv()

	a.v.SetDefault("log_level", constants.DefaultLogLevel)
	a.v.SetDefault("format", constants.DefaultFormat)
	a.v.SetDefault("color", true)
	a.v.SetDefault("max_line_bytes", perfscript.DefaultMaxLineBytes)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(constants.SystemConfigDir)
		a.v.SetConfigType(constants.ConfigType)
		a.v.SetConfigName(constants.ConfigName)
	}

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// It's okay if no config file is found - we'll use defaults and env vars
	}
	return nil
}

// color reports whether styled output is enabled. Styling is only applied
// when stdout is a terminal so redirected output stays verbatim.
func (a *app) color() bool {
	return !a.noColor && a.v.GetBool("color") && isTerminal(a.stdout)
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// format resolves the output format: an explicit flag wins over config
func (a *app) format(cmd *cobra.Command, flagValue string) (render.Format, error) {
	if cmd.Flags().Changed("format") {
		return render.ParseFormat(flagValue)
	}
	return render.ParseFormat(a.v.GetString("format"))
}

// parser builds a script parser from the effective configuration
func (a *app) parser() *perfscript.Parser {
	return perfscript.NewParser(
		perfscript.WithMaxLineBytes(a.v.GetInt("max_line_bytes")),
		perfscript.WithLogger(logging.Logger()),
	)
}

func (a *app) renderOptions(lineNumbers bool) render.Options {
	return render.Options{Color: a.color(), LineNumbers: lineNumbers}
}
