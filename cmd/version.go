package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// These variables will be set during the build using ldflags
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildTime    = "unknown"
)

// GetFormattedBuildTime returns the build time in a readable format
func GetFormattedBuildTime() string {
	if buildTime == "unknown" {
		return buildTime
	}

	// First try to parse as RFC3339 format
	if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
		return t.UTC().Format("2006-01-02 15:04:05 MST")
	}

	// Then try to parse as Unix timestamp
	if unixTime, err := strconv.ParseInt(buildTime, 10, 64); err == nil {
		return time.Unix(unixTime, 0).UTC().Format("2006-01-02 15:04:05 MST")
	}

	// Return original if parsing fails
	return buildTime
}

func newVersionCmd(a *app) *cobra.Command {
	var shortOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if shortOutput {
				fmt.Fprintln(a.stdout, buildVersion)
				return
			}

			labelColor := color.New(color.FgWhite)
			versionColor := color.New(color.FgCyan, color.Bold)
			buildColor := color.New(color.FgYellow)
			commitColor := color.New(color.FgGreen)
			osArchColor := color.New(color.FgMagenta)
			pathColor := color.New(color.FgBlue)

			exePath := "Unknown"
			if exe, err := os.Executable(); err == nil {
				exePath, _ = filepath.Abs(exe)
			}

			lines := []struct {
				label string
				value string
				color *color.Color
			}{
				{"Version: ", buildVersion, versionColor},
				{"Built:   ", GetFormattedBuildTime(), buildColor},
				{"Commit:  ", buildCommit, commitColor},
				{"OS/Arch: ", runtime.GOOS + "/" + runtime.GOARCH, osArchColor},
				{"Go:      ", runtime.Version(), osArchColor},
				{"Binary:  ", exePath, pathColor},
			}
			for _, line := range lines {
				labelColor.Fprint(a.stdout, line.label)
				line.color.Fprintln(a.stdout, line.value)
			}
		},
	}

	cmd.Flags().BoolVarP(&shortOutput, "short", "n", false, "Print only version number")
	return cmd
}
