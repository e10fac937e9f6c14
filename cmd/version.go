package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s\n", app, resolveVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersion falls back to the module version and vcs revision recorded
// by the go tool when no version was set at link time.
func resolveVersion() string {
	if version != "unknown" {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	return buildVersion(info, version)
}

// buildVersion renders the main module version with a short revision. Local
// builds report "(devel)" or nothing, in which case fallback is returned.
func buildVersion(info *debug.BuildInfo, fallback string) string {
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return fallback
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			v += " (" + setting.Value[:7] + ")"
		}
	}
	return v
}
