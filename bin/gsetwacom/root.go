// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"
	"strings"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/spf13/cobra"

	"gsetwacom/devices"
	"gsetwacom/monitors"
	"gsetwacom/peripherals"
)

var logger = log.NewLogger("gsetwacom")

// The store is a package variable so tests can substitute an in-memory
// implementation.
var store peripherals.Store = peripherals.NewGioStore()

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "gsetwacom",
	Short: "Show or change GNOME tablet and stylus configuration",
	Long: `gsetwacom reads and writes the GNOME tablet and stylus configuration
kept in GSettings. It is a terminal-friendly equivalent of the tablet
panel in the control center: settings written here are picked up by the
compositor, nothing is sent to the device directly.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyVerbosity()
	},
}

func applyVerbosity() {
	level := log.LevelWarning
	switch {
	case verbosity == 1:
		level = log.LevelInfo
	case verbosity >= 2:
		level = log.LevelDebug
	}
	logger.SetLogLevel(level)
	devices.SetLogLevel(level)
	monitors.SetLogLevel(level)
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity")
}

func execute() error {
	rootCmd.SetArgs(hoistDeviceArg(os.Args[1:]))
	return rootCmd.Execute()
}

// The tablet and stylus groups take the device identifier between the
// group name and the subcommand. Cobra resolves subcommands purely by
// position, so the identifier is lifted out of the argument list here and
// the group commands read it from deviceArg.
var deviceArg string

func hoistDeviceArg(args []string) []string {
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		if a != "tablet" && a != "stylus" {
			return args
		}
		group := tabletCmd
		if a == "stylus" {
			group = stylusCmd
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") && !isSubcommandOf(group, args[i+1]) {
			deviceArg = args[i+1]
			return append(append([]string{}, args[:i+1]...), args[i+2:]...)
		}
		return args
	}
	return args
}

func isSubcommandOf(group *cobra.Command, name string) bool {
	for _, c := range group.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
