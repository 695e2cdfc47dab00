package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeeftor/perfscript/internal/constants"
	"github.com/jeeftor/perfscript/internal/filesystem"
	"github.com/jeeftor/perfscript/internal/logging"
	"github.com/jeeftor/perfscript/internal/perfscript"
	"github.com/jeeftor/perfscript/internal/render"
	"github.com/jeeftor/perfscript/internal/styles"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the keys read from .perfscript.yaml
type fileConfig struct {
	LogLevel     string `yaml:"log_level"`
	Format       string `yaml:"format"`
	Color        bool   `yaml:"color"`
	MaxLineBytes int    `yaml:"max_line_bytes"`
}

const sampleConfigHeader = `# perfscript configuration file
#
# Configuration Priority (highest to lowest):
# 1. Command-line flags
# 2. Environment variables (PERFSCRIPT_*)
# 3. Configuration file values
# 4. Built-in defaults
#
# log_level:      trace, debug, info, warn, error
# format:         text, table, json, yaml
# color:          style terminal output
# max_line_bytes: longest accepted script line

`

// generateSampleConfig renders the default configuration as YAML
func generateSampleConfig() ([]byte, error) {
	body, err := yaml.Marshal(fileConfig{
		LogLevel:     constants.DefaultLogLevel,
		Format:       constants.DefaultFormat,
		Color:        true,
		MaxLineBytes: perfscript.DefaultMaxLineBytes,
	})
	if err != nil {
		return nil, err
	}
	return append([]byte(sampleConfigHeader), body...), nil
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage perfscript configuration files",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [config-file]",
		Short: "Create a sample configuration file",
		Long: `Generate a sample configuration file with all available options.

If no file is specified, creates ~/.perfscript.yaml in the user's home directory.

Examples:
  perfscript config init                  # Create ~/.perfscript.yaml
  perfscript config init .perfscript.yaml # Create a project config`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configPath string
			if len(args) > 0 {
				configPath = args[0]
			} else {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("could not determine home directory: %w", err)
				}
				configPath = filepath.Join(home, constants.ConfigName+"."+constants.ConfigType)
			}

			absPath, err := filesystem.GetAbsolutePath(configPath)
			if err != nil {
				return fmt.Errorf("could not resolve config path: %w", err)
			}

			if _, err := os.Stat(absPath); err == nil {
				return fmt.Errorf("configuration file already exists: %s", absPath)
			}

			content, err := generateSampleConfig()
			if err != nil {
				return err
			}
			if err := filesystem.WriteFileWithDirectory(absPath, content, 0644); err != nil {
				return err
			}

			logging.Successf("Created configuration file: %s", absPath)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.v.ConfigFileUsed()
			if source == "" {
				source = "(none, using defaults and environment)"
			}

			set := styles.Default()

			rows := [][2]string{
				{"config_file", source},
				{"log_level", a.v.GetString("log_level")},
				{"format", a.v.GetString("format")},
				{"color", fmt.Sprint(a.v.GetBool("color"))},
				{"max_line_bytes", fmt.Sprint(a.v.GetInt("max_line_bytes"))},
				{"formats", render.FormatNames()},
			}
			for _, row := range rows {
				label := fmt.Sprintf("%-15s ", row[0]+":")
				if a.color() {
					styles.PrintStyled(a.stdout, set.Label, label)
					styles.PrintStyledln(a.stdout, set.Value, row[1])
					continue
				}
				fmt.Fprintf(a.stdout, "%s%s\n", label, row[1])
			}
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
