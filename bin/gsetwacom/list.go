// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"github.com/spf13/cobra"

	"gsetwacom/devices"
)

var listTabletsCmd = &cobra.Command{
	Use:   "list-tablets",
	Short: "List all potential tablet devices found on this system",
	Long: `List all potential tablet devices found on this system.

This uses udev; a device listed here may not be available in the
compositor and/or currently have configuration set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tablets := devices.ListTablets()
		if len(tablets) == 0 {
			cmd.Println("No devices found")
			return nil
		}
		cmd.Println("devices:")
		for _, tablet := range tablets {
			cmd.Printf("- name: %q\n", tablet.Name)
			cmd.Printf("  usbid: %q\n", tablet.ID.String())
		}
		return nil
	},
}

var listStyliCmd = &cobra.Command{
	Use:   "list-styli",
	Short: "List the styli previously seen on this system",
	Long: `List the styli previously seen on this system.

Only styli with unique serial numbers are listed.

This uses the gnome-control-center cache file; a stylus may not be
listed until it has been brought into proximity above the control
center.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		styli, err := devices.ListStyli()
		if err != nil {
			return err
		}
		if len(styli) == 0 {
			cmd.Println("No styli found")
			return nil
		}
		cmd.Println("styli:")
		for _, serial := range styli {
			cmd.Println(" - serial number:", serial)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listTabletsCmd, listStyliCmd)
}
