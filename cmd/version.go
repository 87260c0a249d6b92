package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of seatbook",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(build))
		},
	}
}

func versionString(build BuildInfo) string {
	version := build.Version
	if version == "" {
		version = "dev"
	}
	s := fmt.Sprintf("%s %s", appName, version)
	if build.Commit != "none" && build.Commit != "" {
		s += fmt.Sprintf(" (%s)", build.Commit)
	}
	return s
}
